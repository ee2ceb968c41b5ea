package csscribe

// Session holds per-host state shared by the actions of one running host.
type Session struct {
	// registrationMode is toggled by the user. Neither Record nor Transform
	// reads it yet.
	registrationMode bool
}

// RegistrationMode reports whether registration mode is on.
func (s *Session) RegistrationMode() bool {
	return s.registrationMode
}

// ToggleRegistrationMode flips registration mode and returns the new value.
func (s *Session) ToggleRegistrationMode() bool {
	s.registrationMode = !s.registrationMode
	return s.registrationMode
}
