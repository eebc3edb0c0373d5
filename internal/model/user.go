package model

type User struct {
	ID int64 `json:"id"`
	Email string `json:"email"`
	Password string `json:"-"` // bcrypt-хэш, наружу не отдаем
	Name string `json:"name"`
	Surname string `json:"surname"`
}
