package service

// VerificationCodeLength is the number of digits in a password reset code.
const VerificationCodeLength = 6

// CodeGenerator produces password reset codes and their storage fingerprints.
type CodeGenerator interface {
	// Generate returns a uniformly random numeric code of VerificationCodeLength digits.
	Generate() (string, error)

	// Fingerprint returns the keyed digest stored in place of the code.
	Fingerprint(email, code string) string
}
