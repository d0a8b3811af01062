package session

// SetUserVerified flips the signed-in user's verified flag. The mock user is
// always verified, so tests need this to reach the unverified branches.
func SetUserVerified(s *Session, verified bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User != nil {
		s.state.User.Verified = verified
	}
}
