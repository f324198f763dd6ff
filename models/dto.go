package models

import "mime/multipart"

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// PostForm is the multipart body of post create/update. Nil pointers mean
// "not supplied" on update.
type PostForm struct {
	Title       *string  `form:"title" json:"title"`
	Category    *string  `form:"category" json:"category"`
	Content     *string  `form:"content" json:"content"`
	Tags        []string `form:"tags" json:"tags"`
	Highlighted *bool    `form:"highlighted" json:"highlighted"`

	Image *multipart.FileHeader `form:"image" json:"-"`
}

type TagRequest struct {
	Name string `json:"name" form:"name"`
}

type AuthorForm struct {
	FullName     *string  `form:"fullName" json:"fullName"`
	BirthDate    *string  `form:"birthDate" json:"birthDate"`
	BirthPlace   *string  `form:"birthPlace" json:"birthPlace"`
	Education    *string  `form:"education" json:"education"`
	Website      *string  `form:"website" json:"website"`
	Achievements []string `form:"achievements" json:"achievements"`

	Image *multipart.FileHeader `form:"image" json:"-"`
}

type ContactRequest struct {
	Name    string  `json:"name" form:"name" binding:"required"`
	Phone   string  `json:"phone" form:"phone" binding:"required"`
	Email   string  `json:"email" form:"email" binding:"required,email"`
	Subject Subject `json:"subject" form:"subject" binding:"required,subject"`
	Message string  `json:"message" form:"message" binding:"required"`
}

type TermRequest struct {
	Term        string `json:"term" form:"term"`
	Description string `json:"description" form:"description"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
