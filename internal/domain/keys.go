package domain

type CtxKey string

const (
	KeyUserID     CtxKey = "UserID"
	KeyUserEmail  CtxKey = "Email"
	KeyUserRole   CtxKey = "Role"
	KeyEmployerID CtxKey = "EmployerID"
	KeyEmployer   CtxKey = "Employer"
)
