package models

// User - учетная запись платформы (студент, экзаменатор, диспетчер).
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
