package user

type User struct{}
