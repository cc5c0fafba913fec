package device

type Device struct{}
