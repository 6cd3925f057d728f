package definition

import "github.com/giantswarm/microerror"

var invalidDefinitionError = &microerror.Error{
	Kind: "invalidDefinitionError",
}

// IsInvalidDefinition asserts invalidDefinitionError.
func IsInvalidDefinition(err error) bool {
	return microerror.Cause(err) == invalidDefinitionError
}

var unknownCallbackError = &microerror.Error{
	Kind: "unknownCallbackError",
}

// IsUnknownCallback asserts unknownCallbackError.
func IsUnknownCallback(err error) bool {
	return microerror.Cause(err) == unknownCallbackError
}
