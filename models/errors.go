package models

import (
	"fmt"
	"net/http"
)

// AppError carries the HTTP status a failure should be rendered with.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// User-facing messages.
const (
	MsgCredentialsRequired = "Username va parol majburiy"
	MsgAdminNotFound       = "Admin topilmadi"
	MsgWrongPassword       = "Parol noto'g'ri"
	MsgTokenMissing        = "Token yuborilmadi"
	MsgTokenInvalid        = "Token noto'g'ri"
	MsgTokenRevoked        = "Token bekor qilingan"

	MsgImageMissing      = "Rasm yuklanmagan"
	MsgPostNotFound      = "Bunday post topilmadi"
	MsgPostFieldsMissing = "Sarlavha va matn majburiy"
	MsgTagsNotFound      = "Ba'zi taglar topilmadi"
	MsgSearchEmpty       = "Qidiruv uchun matn kiriting"
	MsgSearchNoMatch     = "Mos postlar topilmadi"
	MsgNoPostsYet        = "Hali hech qanday post topilmadi"

	MsgInvalidCategory   = "Bunday kategoriya mavjud emas"
	MsgCategoryNoPosts   = "Bu kategoriyada postlar topilmadi"
	MsgTagIDInvalid      = "Tag ID noto'g'ri formatda"
	MsgTagNoPosts        = "Bu tagga mos postlar topilmadi"
	MsgTagNameRequired   = "Tag nomi majburiy"
	MsgTagNameTaken      = "Bu nomli tag allaqachon mavjud"
	MsgTagNotFound       = "Tag topilmadi"
	MsgAuthorNameMissing = "Ismingizni to'liq kiriting"
	MsgAuthorNotFound    = "Muallif topilmadi"
	MsgContactNotFound   = "Murojaat topilmadi"
	MsgTermFieldsMissing = "Term va description majburiy"
	MsgTermNotFound      = "Atama topilmadi"
	MsgTermLetterEmpty   = "Bu harfga mos atamalar topilmadi"
	MsgInvalidID         = "ID noto'g'ri formatda"
	MsgInvalidBody       = "So'rov ma'lumotlari noto'g'ri"
	MsgTooManyRequests   = "Juda ko'p so'rov yuborildi, birozdan so'ng urinib ko'ring"
	MsgInternal          = "Serverda xatolik yuz berdi"
)
