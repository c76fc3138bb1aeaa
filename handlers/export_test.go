package handlers

// PendingOTP exposes a pending signup's verification code to handler tests.
func PendingOTP(email string) string {
	pendingMu.Lock()
	defer pendingMu.Unlock()
	return pendingSignups[email].OTP
}
