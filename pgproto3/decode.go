package pgproto3

// DecodeBackend parses frame as a message sent by the backend and returns
// the decoded message. It returns *UnknownMessageTypeError for a type byte
// this package does not recognize.
func DecodeBackend(frame Frame) (BackendMessage, error) {
	var msg BackendMessage

	switch frame.Type {
	case '1':
		msg = &ParseComplete{}
	case '2':
		msg = &BindComplete{}
	case '3':
		msg = &CloseComplete{}
	case 'A':
		msg = &NotificationResponse{}
	case 'C':
		msg = &CommandComplete{}
	case 'D':
		msg = &DataRow{}
	case 'H':
		msg = &CopyOutResponse{}
	case 'E':
		msg = &ErrorResponse{}
	case 'I':
		msg = &EmptyQueryResponse{}
	case 'K':
		msg = &BackendKeyData{}
	case 'n':
		msg = &NoData{}
	case 'N':
		msg = &NoticeResponse{}
	case 'R':
		msg = &AuthenticationRequest{}
	case 'S':
		msg = &ParameterStatus{}
	case 't':
		msg = &ParameterDescription{}
	case 'T':
		msg = &RowDescription{}
	case 'Z':
		msg = &ReadyForQuery{}
	default:
		return nil, &UnknownMessageTypeError{Type: frame.Type}
	}

	if err := msg.Decode(frame.Body); err != nil {
		return nil, err
	}
	return msg, nil
}
