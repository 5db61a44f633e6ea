package sqlite

import (
	"fmt"
	"time"

	"github.com/dentabookhq/core/model"
)

func (sl *SQLite) CreateUser(dbName string, u model.User) (model.User, error) {
	if u.Created.IsZero() {
		u.Created = time.Now()
	}

	id := sl.NewID()

	qry := fmt.Sprintf(`
		INSERT INTO %s_users(id, email, password, full_name, phone, role, profile_image, token, created)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, dbName)

	_, err := sl.DB.Exec(
		qry,
		id,
		u.Email,
		u.Password,
		u.FullName,
		u.Phone,
		u.Role,
		u.ProfileImage,
		u.Token,
		u.Created,
	)
	if err != nil {
		return u, err
	}

	u.ID = id
	return u, nil
}

func (sl *SQLite) FindUser(dbName, userID string) (u model.User, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s_users
		WHERE id = $1
	`, dbName)

	row := sl.DB.QueryRow(qry, userID)

	err = scanUser(row, &u)
	return
}

func (sl *SQLite) FindUserByEmail(dbName, email string) (u model.User, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s_users
		WHERE email = $1
	`, dbName)

	row := sl.DB.QueryRow(qry, email)

	err = scanUser(row, &u)
	return
}

func (sl *SQLite) FindUserByToken(dbName, userID, token string) (u model.User, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s_users
		WHERE id = $1 AND token = $2
	`, dbName)

	row := sl.DB.QueryRow(qry, userID, token)

	err = scanUser(row, &u)
	return
}

func (sl *SQLite) UserEmailExists(dbName, email string) (bool, error) {
	qry := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s_users WHERE email = $1
	`, dbName)

	var count int
	if err := sl.DB.QueryRow(qry, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (sl *SQLite) SetUserProfileImage(dbName, userID, url string) error {
	qry := fmt.Sprintf(`
		UPDATE %s_users SET profile_image = $2
		WHERE id = $1;
	`, dbName)

	if _, err := sl.DB.Exec(qry, userID, url); err != nil {
		return err
	}
	return nil
}

func scanUser(rows Scanner, u *model.User) error {
	return rows.Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.FullName,
		&u.Phone,
		&u.Role,
		&u.ProfileImage,
		&u.Token,
		&u.Created,
	)
}
