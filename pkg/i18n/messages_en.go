package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, KeyNameRequired, "Name is required")
	message.SetString(lang, KeyEmailRequired, "Email is required")
	message.SetString(lang, KeyEmailInvalid, "Enter a valid email address")
	message.SetString(lang, KeyDescriptionRequired, "Project description is required")

	message.SetString(lang, KeySubmitFailed, "Something went wrong. Try again or contact me directly at %s")

	message.SetString(lang, KeyNotifyConfigMissing, "The email service is not configured. Please contact us directly.")
	message.SetString(lang, KeyNotifyFieldsRequired, "Name, email and project description are required")
	message.SetString(lang, KeyNotifyEmailInvalid, "Enter a valid email address")
	message.SetString(lang, KeyNotifyProviderAuth, "The email service is misconfigured. Contact me directly at %s")
	message.SetString(lang, KeyNotifyRecipientInvalid, "The email address could not be verified. Check that you entered the right address.")
	message.SetString(lang, KeyNotifyRateLimited, "Too many requests. Wait a moment and try again.")
	message.SetString(lang, KeyNotifyNetwork, "Connection error. Check your internet connection and try again.")
	message.SetString(lang, KeyNotifyUnknown, "Could not send email. Try again later or contact me directly at %s")
	message.SetString(lang, KeyNotifyBadRequest, "Invalid request")
	message.SetString(lang, KeyNotifyMethodNotAllowed, "Method not allowed")

	message.SetString(lang, KeyInternalSubject, "Project request from %s - %s")
	message.SetString(lang, KeyPrivateCompany, "Private")
	message.SetString(lang, KeyConfirmationSubject, "Thanks for your project request! 🚀 - PixelPioneer")

	message.SetString(lang, KeyStepContact, "Contact details")
	message.SetString(lang, KeyStepProject, "Your project")
	message.SetString(lang, KeyStepProjectLong, "About the project")
	message.SetString(lang, KeyStepDesign, "What feeling?")
	message.SetString(lang, KeyStepDesignLong, "Design & content")
	message.SetString(lang, KeyStepFeatures, "Features")
	message.SetString(lang, KeyStepTimeline, "Timeline & other")

	message.SetString(lang, KeyProgress, "Step %d of %d")
	message.SetString(lang, KeyNext, "Next →")
	message.SetString(lang, KeyBack, "← Back")
	message.SetString(lang, KeyCancel, "← Cancel")
	message.SetString(lang, KeySubmit, "Send brief")
	message.SetString(lang, KeySubmitting, "Sending...")
	message.SetString(lang, KeyThanks, "Thanks for your brief!")
	message.SetString(lang, KeyThanksBody, "I will get back to you within 48 hours. Keep an eye on your inbox.")
	message.SetString(lang, KeyErrorsHint, "Fix the following before continuing:")
}
