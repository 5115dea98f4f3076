package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the caller does not own the resource
	ErrForbidden = errors.New("anda tidak berhak mengakses resource ini")
	// ErrAuthentication will throw if the given credential is wrong
	ErrAuthentication = errors.New("kredensial yang Anda masukkan salah")
)

// ValidationEntity identifies which entity constructor rejected its payload.
type ValidationEntity string

const (
	EntityNewThread     ValidationEntity = "NEW_THREAD"
	EntityNewComment    ValidationEntity = "NEW_COMMENT"
	EntityNewReply      ValidationEntity = "NEW_REPLY"
	EntityAddedThread   ValidationEntity = "ADDED_THREAD"
	EntityAddedComment  ValidationEntity = "ADDED_COMMENT"
	EntityAddedReply    ValidationEntity = "ADDED_REPLY"
	EntityThreadDetail  ValidationEntity = "THREAD_DETAIL"
	EntityCommentDetail ValidationEntity = "COMMENT_DETAIL"
	EntityReplyDetail   ValidationEntity = "REPLY_DETAIL"
	EntityLike          ValidationEntity = "LIKE"
	EntityRegisterUser  ValidationEntity = "REGISTER_USER"
	EntityUserLogin     ValidationEntity = "USER_LOGIN"
	EntityRefreshAuth   ValidationEntity = "REFRESH_AUTHENTICATION_USE_CASE"
	EntityDeleteAuth    ValidationEntity = "DELETE_AUTHENTICATION_USE_CASE"
)

// ValidationFailure is the closed set of rules a payload can break.
type ValidationFailure int

const (
	MissingProperty ValidationFailure = iota
	WrongDataType
	UsernameLimitChar
	UsernameRestrictedChar
	MissingRefreshToken
	PayloadWrongDataType
)

func (f ValidationFailure) code() string {
	switch f {
	case MissingProperty:
		return "NOT_CONTAIN_NEEDED_PROPERTY"
	case WrongDataType:
		return "NOT_MEET_DATA_TYPE_SPECIFICATION"
	case UsernameLimitChar:
		return "USERNAME_LIMIT_CHAR"
	case UsernameRestrictedChar:
		return "USERNAME_CONTAIN_RESTRICTED_CHARACTER"
	case MissingRefreshToken:
		return "NOT_CONTAIN_REFRESH_TOKEN"
	case PayloadWrongDataType:
		return "PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION"
	default:
		return "UNKNOWN"
	}
}

// ValidationError is raised by entity constructors on the first broken rule.
// The zero-context code (e.g. NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY) is the
// internal identity; Message gives the user-facing translation.
type ValidationError struct {
	Entity  ValidationEntity
	Failure ValidationFailure
}

func (e ValidationError) Error() string {
	return string(e.Entity) + "." + e.Failure.code()
}

// messageDirectory maps every translated validation error to its user-facing
// message. Members without a translation fall back to the raw code.
var messageDirectory = map[ValidationError]string{
	{EntityNewThread, MissingProperty}:          "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	{EntityNewThread, WrongDataType}:            "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	{EntityThreadDetail, MissingProperty}:       "tidak dapat mengambil thread detail baru karena properti yang dibutuhkan tidak ada",
	{EntityThreadDetail, WrongDataType}:         "tidak dapat mengambil thread detail baru karena tipe data tidak sesuai",
	{EntityNewComment, MissingProperty}:         "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada",
	{EntityNewComment, WrongDataType}:           "komentar harus string",
	{EntityNewReply, MissingProperty}:           "tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada",
	{EntityNewReply, WrongDataType}:             "balasan harus string",
	{EntityCommentDetail, MissingProperty}:      "tidak dapat mengambil detail komentar karena properti yang dibutuhkan tidak ada",
	{EntityCommentDetail, WrongDataType}:        "tidak dapat mengambil detail komentar karena tipe data tidak sesuai",
	{EntityReplyDetail, MissingProperty}:        "tidak dapat mengambil detail balasan karena properti yang dibutuhkan tidak ada",
	{EntityReplyDetail, WrongDataType}:          "tidak dapat mengambil detail balasan karena tipe data tidak sesuai",
	{EntityLike, MissingProperty}:               "tidak dapat membuat like baru karena properti yang dibutuhkan tidak ada",
	{EntityLike, WrongDataType}:                 "tidak dapat membuat like baru karena tipe data tidak sesuai",
	{EntityRegisterUser, MissingProperty}:       "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
	{EntityRegisterUser, WrongDataType}:         "tidak dapat membuat user baru karena tipe data tidak sesuai",
	{EntityRegisterUser, UsernameLimitChar}:     "tidak dapat membuat user baru karena karakter username melebihi batas limit",
	{EntityRegisterUser, UsernameRestrictedChar}: "tidak dapat membuat user baru karena username mengandung karakter terlarang",
	{EntityUserLogin, MissingProperty}:          "harus mengirimkan username dan password",
	{EntityUserLogin, WrongDataType}:            "username dan password harus string",
	{EntityRefreshAuth, MissingRefreshToken}:    "harus mengirimkan token refresh",
	{EntityRefreshAuth, PayloadWrongDataType}:   "refresh token harus string",
	{EntityDeleteAuth, MissingRefreshToken}:     "harus mengirimkan token refresh",
	{EntityDeleteAuth, PayloadWrongDataType}:    "refresh token harus string",
}

// Message returns the localized user-facing message for the error,
// or the raw code when no translation is registered.
func (e ValidationError) Message() string {
	if msg, ok := messageDirectory[e]; ok {
		return msg
	}
	return e.Error()
}
