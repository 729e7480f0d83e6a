package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Swedish

	message.SetString(lang, KeyNameRequired, "Namn är obligatoriskt")
	message.SetString(lang, KeyEmailRequired, "E-post är obligatoriskt")
	message.SetString(lang, KeyEmailInvalid, "Ange en giltig e-postadress")
	message.SetString(lang, KeyDescriptionRequired, "Projektbeskrivning är obligatoriskt")

	message.SetString(lang, KeySubmitFailed, "Något gick fel. Försök igen eller kontakta mig direkt på %s")

	message.SetString(lang, KeyNotifyConfigMissing, "E-posttjänsten är inte konfigurerad. Kontakta oss direkt.")
	message.SetString(lang, KeyNotifyFieldsRequired, "Namn, e-post och projektbeskrivning är obligatoriska")
	message.SetString(lang, KeyNotifyEmailInvalid, "Ange en giltig e-postadress")
	message.SetString(lang, KeyNotifyProviderAuth, "E-posttjänsten är felkonfigurerad. Kontakta mig direkt på %s")
	message.SetString(lang, KeyNotifyRecipientInvalid, "E-postadressen kunde inte verifieras. Kontrollera att du angett rätt adress.")
	message.SetString(lang, KeyNotifyRateLimited, "För många förfrågningar. Vänta en stund och försök igen.")
	message.SetString(lang, KeyNotifyNetwork, "Anslutningsfel. Kontrollera din internetanslutning och försök igen.")
	message.SetString(lang, KeyNotifyUnknown, "Kunde inte skicka e-post. Försök igen senare eller kontakta mig direkt på %s")
	message.SetString(lang, KeyNotifyBadRequest, "Ogiltig förfrågan")
	message.SetString(lang, KeyNotifyMethodNotAllowed, "Metoden stöds inte")

	message.SetString(lang, KeyInternalSubject, "Projektförfrågan från %s - %s")
	message.SetString(lang, KeyPrivateCompany, "Privat")
	message.SetString(lang, KeyConfirmationSubject, "Tack för din projektförfrågan! 🚀 - PixelPioneer")

	message.SetString(lang, KeyStepContact, "Kontaktuppgifter")
	message.SetString(lang, KeyStepProject, "Ditt projekt")
	message.SetString(lang, KeyStepProjectLong, "Om projektet")
	message.SetString(lang, KeyStepDesign, "Vilken känsla?")
	message.SetString(lang, KeyStepDesignLong, "Design & innehåll")
	message.SetString(lang, KeyStepFeatures, "Funktioner")
	message.SetString(lang, KeyStepTimeline, "Tidplan & övrigt")

	message.SetString(lang, KeyProgress, "Steg %d av %d")
	message.SetString(lang, KeyNext, "Nästa →")
	message.SetString(lang, KeyBack, "← Tillbaka")
	message.SetString(lang, KeyCancel, "← Avbryt")
	message.SetString(lang, KeySubmit, "Skicka brief")
	message.SetString(lang, KeySubmitting, "Skickar...")
	message.SetString(lang, KeyThanks, "Tack för din brief!")
	message.SetString(lang, KeyThanksBody, "Jag återkommer inom 48 timmar. Håll utkik i inkorgen.")
	message.SetString(lang, KeyErrorsHint, "Rätta följande innan du går vidare:")
}
