package pgproto3

// DecodeFrontend parses frame as a message sent by the frontend and returns
// the decoded message. It returns *UnknownMessageTypeError for a type byte
// this package does not recognize. It is used by test harnesses that stand
// in for the backend (see the pgmock package); the client half of this
// package never calls it.
func DecodeFrontend(frame Frame) (FrontendMessage, error) {
	var msg FrontendMessage

	switch frame.Type {
	case 'B':
		msg = &Bind{}
	case 'C':
		msg = &Close{}
	case 'D':
		msg = &Describe{}
	case 'E':
		msg = &Execute{}
	case 'H':
		msg = &Flush{}
	case 'P':
		msg = &Parse{}
	case 'p':
		msg = &PasswordMessage{}
	case 'Q':
		msg = &Query{}
	case 'S':
		msg = &Sync{}
	case 'X':
		msg = &Terminate{}
	default:
		return nil, &UnknownMessageTypeError{Type: frame.Type}
	}

	if err := msg.Decode(frame.Body); err != nil {
		return nil, err
	}
	return msg, nil
}
