package dto

// InscriptionForm is the form body for POST /Inscription.
type InscriptionForm struct {
	Name     string `form:"name" binding:"required,max=120"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}
