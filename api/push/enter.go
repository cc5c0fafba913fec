package push

type Push struct{}
