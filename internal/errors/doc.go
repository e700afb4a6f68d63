// Package errors provides the structured error type used across poketrainers.
//
// Every error carries a Code, a user-facing message, an optional cause and a
// metadata map. Lookups into the reference tables fail with NotFound and record
// the key they searched for:
//
//	return nil, errors.NotFoundf("pokemon %s not found", name).
//	    WithMeta("name", name)
//
// Malformed tables (unordered levels, unparseable or cyclic evolution chains)
// surface as DataIntegrity:
//
//	return nil, errors.DataIntegrityf("evolution cycle through %s", name)
//
// Wrapping keeps the original code so callers can still branch on it:
//
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to load level table")
//	}
//	...
//	if errors.IsNotFound(err) { ... }
//
// Field validation is collected with a ValidationBuilder and reported as a
// single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateNonNegative("candies", input.Candies, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Command line front ends translate a Code into a process exit status with
// Code.ExitStatus.
package errors
