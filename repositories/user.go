//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"skillflow/domain"
	"skillflow/errors"
)

type IUserRepository interface {
	CreateUser(user domain.User) (domain.User, error)
	GetUser(id string) (domain.User, error)
	UpdateProfile(user domain.User) (domain.User, error)
	ToggleFollow(actorID, targetID string) (FollowToggle, error)
}

// FollowToggle is the outcome of one follow/unfollow flip: the fresh state
// of both participants plus the direction the edge moved.
type FollowToggle struct {
	Actor        domain.User
	Target       domain.User
	NowFollowing bool
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

const (
	defaultProfilePic  = "/download.png"
	defaultBio         = "Hey there! I'm using SkillFlow."
	defaultAccountType = "public"
)

func userKey(id string) []byte {
	return []byte("user:" + id)
}

// CreateUser persists a new account with profile defaults filled in.
func (u UserRepository) CreateUser(user domain.User) (domain.User, error) {
	if user.ProfilePic == "" {
		user.ProfilePic = defaultProfilePic
	}
	if user.Bio == "" {
		user.Bio = defaultBio
	}
	if user.AccountType == "" {
		user.AccountType = defaultAccountType
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.UpdatedAt = user.CreatedAt

	err := u.db.Update(func(txn *badger.Txn) error {
		key := userKey(user.ID)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return setUser(txn, user)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (u UserRepository) GetUser(id string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		var innerErr error
		user, innerErr = getUser(txn, id)
		return innerErr
	})
	return user, err
}

// UpdateProfile overwrites the profile fields of an existing account while
// keeping its follow edges untouched.
func (u UserRepository) UpdateProfile(user domain.User) (domain.User, error) {
	var updated domain.User
	err := u.db.Update(func(txn *badger.Txn) error {
		existing, innerErr := getUser(txn, user.ID)
		if innerErr != nil {
			return innerErr
		}

		existing.Name = user.Name
		existing.Email = user.Email
		existing.ProfilePic = user.ProfilePic
		existing.Bio = user.Bio
		existing.AccountType = user.AccountType
		existing.UpdatedAt = time.Now().UTC()

		updated = existing
		return setUser(txn, existing)
	})
	if err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

// ToggleFollow flips the follow edge actor->target, mutating both users'
// edge lists in one transaction. Following twice lands back at the initial
// state: the operation is an involution on the edge sets.
func (u UserRepository) ToggleFollow(actorID, targetID string) (FollowToggle, error) {
	if actorID == targetID {
		return FollowToggle{}, errors.ErrSelfFollow
	}

	var result FollowToggle
	err := u.db.Update(func(txn *badger.Txn) error {
		actor, innerErr := getUser(txn, actorID)
		if innerErr != nil {
			return innerErr
		}
		target, innerErr := getUser(txn, targetID)
		if innerErr != nil {
			return innerErr
		}

		now := time.Now().UTC()
		if actor.IsFollowing(targetID) {
			actor.Following = lo.Without(actor.Following, targetID)
			target.Followers = lo.Without(target.Followers, actorID)
			result.NowFollowing = false
		} else {
			actor.Following = lo.Union(actor.Following, []string{targetID})
			target.Followers = lo.Union(target.Followers, []string{actorID})
			result.NowFollowing = true
		}
		actor.UpdatedAt = now
		target.UpdatedAt = now

		if innerErr = setUser(txn, actor); innerErr != nil {
			return innerErr
		}
		if innerErr = setUser(txn, target); innerErr != nil {
			return innerErr
		}

		result.Actor = actor
		result.Target = target
		return nil
	})
	if err != nil {
		return FollowToggle{}, err
	}
	return result, nil
}

func getUser(txn *badger.Txn, id string) (domain.User, error) {
	item, err := txn.Get(userKey(id))
	if err == badger.ErrKeyNotFound {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}

	var user domain.User
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &user)
	})
	return user, err
}

func setUser(txn *badger.Txn, user domain.User) error {
	bytes, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return txn.Set(userKey(user.ID), bytes)
}
