package user

type GoogleLoginDTO struct {
	Code string `json:"code"`
}

type UpdateProfileDTO struct {
	Name       *string `json:"name"`
	Industry   *string `json:"industry"`
	Experience *int    `json:"experience"`
	Bio        *string `json:"bio"`
	Skills     *string `json:"skills"`
}

type LoginResult struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
