package postgresql

import (
	"fmt"
	"time"

	"github.com/dentabookhq/core/model"
)

func (pg *PostgreSQL) CreateUser(dbName string, u model.User) (model.User, error) {
	if u.Created.IsZero() {
		u.Created = time.Now()
	}

	qry := fmt.Sprintf(`
		INSERT INTO %s.users(email, password, full_name, phone, role, profile_image, token, created)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`, dbName)

	var id string
	err := pg.DB.QueryRow(
		qry,
		u.Email,
		u.Password,
		u.FullName,
		u.Phone,
		u.Role,
		u.ProfileImage,
		u.Token,
		u.Created,
	).Scan(&id)
	if err != nil {
		return u, err
	}

	u.ID = id
	return u, nil
}

func (pg *PostgreSQL) FindUser(dbName, userID string) (u model.User, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s.users
		WHERE id = $1
	`, dbName)

	row := pg.DB.QueryRow(qry, userID)

	err = scanUser(row, &u)
	return
}

func (pg *PostgreSQL) FindUserByEmail(dbName, email string) (u model.User, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s.users
		WHERE email = $1
	`, dbName)

	row := pg.DB.QueryRow(qry, email)

	err = scanUser(row, &u)
	return
}

func (pg *PostgreSQL) FindUserByToken(dbName, userID, token string) (u model.User, err error) {
	qry := fmt.Sprintf(`
		SELECT *
		FROM %s.users
		WHERE id = $1 AND token = $2
	`, dbName)

	row := pg.DB.QueryRow(qry, userID, token)

	err = scanUser(row, &u)
	return
}

func (pg *PostgreSQL) UserEmailExists(dbName, email string) (bool, error) {
	qry := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s.users WHERE email = $1
	`, dbName)

	var count int
	if err := pg.DB.QueryRow(qry, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (pg *PostgreSQL) SetUserProfileImage(dbName, userID, url string) error {
	qry := fmt.Sprintf(`
		UPDATE %s.users SET profile_image = $2
		WHERE id = $1;
	`, dbName)

	if _, err := pg.DB.Exec(qry, userID, url); err != nil {
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
