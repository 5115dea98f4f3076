package mysql

import (
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"

	"github.com/syamsf/dicoding-forum-api/domain"
)

// MySQL error 1062: duplicate entry for a unique key.
const dupEntryCode = 1062

func isDupEntry(err error) bool {
	var mysqlErr *mysqldrv.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == dupEntryCode
}

// usernameOrMask resolves the username of a LEFT JOIN against users: a null
// column means the owner account was removed, rendered with the placeholder.
func usernameOrMask(username *string) string {
	if username == nil {
		return domain.DeletedUserMask
	}
	return *username
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
