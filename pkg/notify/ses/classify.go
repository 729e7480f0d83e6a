package ses

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/goliatone/go-brief/pkg/notify"
)

var authCodes = map[string]struct{}{
	"InvalidClientTokenId":        {},
	"SignatureDoesNotMatch":       {},
	"UnrecognizedClientException": {},
	"IncompleteSignature":         {},
	"MissingAuthenticationToken":  {},
	"ExpiredToken":                {},
}

var throttleCodes = map[string]struct{}{
	"Throttling":               {},
	"ThrottlingException":      {},
	"TooManyRequestsException": {},
	"MaxSendingRateExceeded":   {},
	"SendingQuotaExceeded":     {},
}

// classify maps an SES failure onto a notify kind.
func classify(err error) error {
	return &notify.ProviderError{Kind: kindOf(err), Code: codeOf(err), Err: err}
}

func kindOf(err error) notify.Kind {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if _, ok := authCodes[code]; ok || strings.HasPrefix(code, "AccessDenied") {
			return notify.KindProviderAuth
		}
		if _, ok := throttleCodes[code]; ok {
			return notify.KindRateLimited
		}
		if code == "MessageRejected" && strings.Contains(strings.ToLower(apiErr.ErrorMessage()), "not verified") {
			return notify.KindRecipientInvalid
		}
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		switch status := respErr.HTTPStatusCode(); {
		case status == http.StatusTooManyRequests:
			return notify.KindRateLimited
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return notify.KindProviderAuth
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return notify.KindNetwork
	}
	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		return notify.KindNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return notify.KindNetwork
	}
	return notify.KindUnknown
}

func codeOf(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
