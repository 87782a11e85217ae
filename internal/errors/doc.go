// Package errors provides the coded error type used across encounter-budget.
//
// Every layer returns *Error values carrying a Code, a user-facing message and
// optional metadata. Handlers translate them to gRPC status errors with
// ToGRPCError, or to HTTP statuses with Code.HTTPStatus.
//
// Creating errors:
//
//	err := errors.NotFound("encounter plan not found").WithMeta("plan_id", id)
//	err := errors.InvalidArgumentf("invalid challenge rating: %q", raw)
//
// Wrapping errors keeps the code of the wrapped *Error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load plan")
//	}
//
// Collecting field validation failures:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("level", level, 1, 20, vb)
//	errors.ValidateMin("quantity", quantity, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Layer guidelines:
//   - Repositories return NotFound and Aborted (version conflicts) and wrap redis errors.
//   - Orchestrators validate input (InvalidArgument) and report unusable
//     configuration as FailedPrecondition.
//   - Handlers convert; they never invent codes.
package errors
