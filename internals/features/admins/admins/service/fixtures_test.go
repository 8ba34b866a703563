package service

import "github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/model"

func adminRow(email string) model.AdminModel {
	return model.AdminModel{Email: email, FullName: "Admin", PasswordHash: "x", IsActive: true}
}
