package statetree

import "github.com/giantswarm/microerror"

var configurationError = &microerror.Error{
	Kind: "configurationError",
}

// IsConfiguration asserts configurationError.
func IsConfiguration(err error) bool {
	return microerror.Cause(err) == configurationError
}

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}

var notFoundError = &microerror.Error{
	Kind: "notFoundError",
}

// IsNotFound asserts notFoundError.
func IsNotFound(err error) bool {
	return microerror.Cause(err) == notFoundError
}

var callbackFailedError = &microerror.Error{
	Kind: "callbackFailedError",
}

// IsCallbackFailed asserts callbackFailedError.
func IsCallbackFailed(err error) bool {
	return microerror.Cause(err) == callbackFailedError
}

var invariantViolationError = &microerror.Error{
	Kind: "invariantViolationError",
}

var multipleRedirectError = &microerror.Error{
	Kind: "multipleRedirectError",
}

// IsInvariantViolation asserts invariantViolationError and
// multipleRedirectError. Both mean the chart was used or wired wrongly.
func IsInvariantViolation(err error) bool {
	c := microerror.Cause(err)
	return c == invariantViolationError || c == multipleRedirectError
}

// IsMultipleRedirect asserts multipleRedirectError.
func IsMultipleRedirect(err error) bool {
	return microerror.Cause(err) == multipleRedirectError
}
