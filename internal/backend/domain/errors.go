package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region MemberNotFoundError

type MemberNotFoundError struct {
	Msg string
}

func (e *MemberNotFoundError) Error() string {
	return e.Msg
}

func (e *MemberNotFoundError) Is(target error) bool {
	_, ok := target.(*MemberNotFoundError)
	return ok
}

//endregion

//region SagaNotFoundError

type SagaNotFoundError struct {
	Msg string
}

func (e *SagaNotFoundError) Error() string {
	return e.Msg
}

func (e *SagaNotFoundError) Is(target error) bool {
	_, ok := target.(*SagaNotFoundError)
	return ok
}

//endregion

//region GatewayError

// GatewayError is a deposit leg failure reported by the payment processor.
type GatewayError struct {
	Kind ErrorKind
	Msg  string
}

func (e *GatewayError) Error() string {
	return e.Msg
}

func (e *GatewayError) Is(target error) bool {
	_, ok := target.(*GatewayError)
	return ok
}

func (e *GatewayError) Retryable() bool {
	return e.Kind == ErrorKindGatewayTimeout
}

//endregion

//region ChainError

// ChainError is a send leg failure reported by the transfer service.
type ChainError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ChainError) Error() string {
	return e.Msg
}

func (e *ChainError) Is(target error) bool {
	_, ok := target.(*ChainError)
	return ok
}

func (e *ChainError) Retryable() bool {
	return e.Kind == ErrorKindChainTimeout
}

//endregion
