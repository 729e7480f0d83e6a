package i18n

// Message keys shared by the form, the submission client and the server.
const (
	KeyNameRequired        = "validation.name_required"
	KeyEmailRequired       = "validation.email_required"
	KeyEmailInvalid        = "validation.email_invalid"
	KeyDescriptionRequired = "validation.description_required"

	KeySubmitFailed = "submit.failed"

	KeyNotifyConfigMissing    = "notify.config_missing"
	KeyNotifyFieldsRequired   = "notify.fields_required"
	KeyNotifyEmailInvalid     = "notify.email_invalid"
	KeyNotifyProviderAuth     = "notify.provider_auth"
	KeyNotifyRecipientInvalid = "notify.recipient_invalid"
	KeyNotifyRateLimited      = "notify.rate_limited"
	KeyNotifyNetwork          = "notify.network"
	KeyNotifyUnknown          = "notify.unknown"
	KeyNotifyBadRequest       = "notify.bad_request"
	KeyNotifyMethodNotAllowed = "notify.method_not_allowed"

	KeyInternalSubject     = "mail.internal.subject"
	KeyPrivateCompany      = "mail.internal.private_company"
	KeyConfirmationSubject = "mail.confirmation.subject"

	KeyStepContact     = "step.contact"
	KeyStepProject     = "step.project"
	KeyStepProjectLong = "step.project_long"
	KeyStepDesign      = "step.design"
	KeyStepDesignLong  = "step.design_long"
	KeyStepFeatures    = "step.features"
	KeyStepTimeline    = "step.timeline"

	KeyProgress   = "form.progress"
	KeyNext       = "form.next"
	KeyBack       = "form.back"
	KeyCancel     = "form.cancel"
	KeySubmit     = "form.submit"
	KeySubmitting = "form.submitting"
	KeyThanks     = "form.thanks"
	KeyThanksBody = "form.thanks_body"
	KeyErrorsHint = "form.errors_hint"
)
