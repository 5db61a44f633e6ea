package memory

import (
	"strings"
	"time"

	"github.com/dentabookhq/core/model"
)

func (m *Memory) CreateUser(dbName string, u model.User) (model.User, error) {
	if len(u.ID) == 0 {
		u.ID = m.NewID()
	}
	u.Created = time.Now()

	if err := create(m, dbName, colUsers, u.ID, u); err != nil {
		return u, err
	}
	return u, nil
}

func (m *Memory) FindUser(dbName, userID string) (u model.User, err error) {
	err = getByID(m, dbName, colUsers, userID, &u)
	return
}

func (m *Memory) FindUserByEmail(dbName, email string) (model.User, error) {
	users, err := all[model.User](m, dbName, colUsers)
	if err != nil {
		return model.User{}, err
	}

	matches := filter(users, func(u model.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if len(matches) == 0 {
		return model.User{}, errDocumentNotFound
	}
	return matches[0], nil
}

func (m *Memory) FindUserByToken(dbName, userID, token string) (model.User, error) {
	u, err := m.FindUser(dbName, userID)
	if err != nil {
		return u, err
	} else if u.Token != token {
		return model.User{}, errDocumentNotFound
	}
	return u, nil
}

func (m *Memory) UserEmailExists(dbName, email string) (bool, error) {
	if _, err := m.FindUserByEmail(dbName, email); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *Memory) SetUserProfileImage(dbName, userID, url string) error {
	u, err := m.FindUser(dbName, userID)
	if err != nil {
		return err
	}

	u.ProfileImage = url
	return create(m, dbName, colUsers, u.ID, u)
}
