package models

type BasicAuth struct {
	Username     string `yaml:"username" json:"username"`
	UsernameHash string `yaml:"username_hash" json:"username_hash"`
	Password     string `yaml:"password" json:"password"`
	PasswordHash string `yaml:"password_hash" json:"password_hash"`
}

func (b BasicAuth) IsEmpty() bool {
	return b.Username == "" && b.UsernameHash == "" && b.Password == "" && b.PasswordHash == ""
}
