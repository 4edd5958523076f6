package users

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/ports/images"

	"github.com/google/uuid"
)

type Service struct {
	repo        Repository
	hasher      PasswordHasher
	images      images.Store
	phoneRegion string
	now         func() time.Time

	// hash de una contraseña aleatoria; se compara contra él cuando el email
	// no existe para que el login tarde lo mismo en ambos casos.
	dummyOnce sync.Once
	dummyHash string
}

type Options struct {
	Hasher      PasswordHasher
	Images      images.Store // opcional; sin store se rechaza la imagen de perfil
	PhoneRegion string
}

func NewService(repo Repository, opts Options) *Service {
	hasher := opts.Hasher
	if hasher == nil {
		hasher = NewBcryptHasher(DefaultBcryptCost)
	}
	region := strings.ToUpper(strings.TrimSpace(opts.PhoneRegion))
	if region == "" {
		region = "BR"
	}
	return &Service{
		repo:        repo,
		hasher:      hasher,
		images:      opts.Images,
		phoneRegion: region,
		now:         time.Now,
	}
}

type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if err := validateInOrder(
		field{name, []validationRule{required(msgNameRequired)}},
		field{email, []validationRule{required(msgEmailRequired), validEmail()}},
		field{phone, []validationRule{required(msgPhoneRequired)}},
		field{in.Password, []validationRule{required(msgPasswordRequired), passwordLength()}},
		field{in.ConfirmPassword, []validationRule{required(msgConfirmRequired)}},
	); err != nil {
		return User{}, err
	}
	if in.Password != in.ConfirmPassword {
		return User{}, apperr.Validation(msgPasswordMismatch)
	}

	_, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, apperr.Conflict(msgEmailTaken)
	case !errors.Is(err, apperr.ErrNotFound):
		return User{}, apperr.Internal(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, apperr.Internal(err)
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        normalizePhone(phone, s.phoneRegion),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		// carrera entre dos registros con el mismo email
		if errors.Is(err, apperr.ErrConflict) {
			return User{}, apperr.Conflict(msgEmailTaken)
		}
		return User{}, apperr.Internal(err)
	}
	return u, nil
}

// Authenticate no distingue email inexistente de contraseña incorrecta.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)

	if err := validateInOrder(
		field{email, []validationRule{required(msgEmailRequired)}},
		field{password, []validationRule{required(msgPasswordRequired)}},
	); err != nil {
		return User{}, err
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return User{}, apperr.Internal(err)
		}
		_, _ = s.hasher.Compare(s.dummy(), password)
		return User{}, apperr.Validation(msgInvalidCredentials)
	}

	ok, err := s.hasher.Compare(u.PasswordHash, password)
	if err != nil {
		return User{}, apperr.Internal(err)
	}
	if !ok {
		return User{}, apperr.Validation(msgInvalidCredentials)
	}
	return u, nil
}

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash(uuid.NewString())
	})
	return s.dummyHash
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return User{}, apperr.NotFound(msgUserNotFound)
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return User{}, apperr.NotFound(msgUserNotFound)
		}
		return User{}, apperr.Internal(err)
	}
	return u, nil
}

// OwnerContact resuelve nombre y teléfono al momento de confirmar una visita.
func (s *Service) OwnerContact(ctx context.Context, userID string) (string, string, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	return u.Name, u.Phone, nil
}

type UpdateInput struct {
	Name            string
	Email           string // vacío = conservar
	Phone           string
	Password        string
	ConfirmPassword string
	Image           *images.Upload
}

func (s *Service) UpdateProfile(ctx context.Context, userID, requestorID string, in UpdateInput) error {
	userID = strings.TrimSpace(userID)
	requestorID = strings.TrimSpace(requestorID)
	if requestorID == "" {
		return apperr.Unauthorized(msgAccessDenied)
	}

	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	email := normalizeEmail(in.Email)

	if err := validateInOrder(
		field{name, []validationRule{required(msgNameRequired)}},
		field{phone, []validationRule{required(msgPhoneRequired)}},
		field{email, []validationRule{validEmail()}},
		field{in.Password, []validationRule{passwordLength()}},
	); err != nil {
		return err
	}

	current, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if current.ID != requestorID {
		return apperr.Forbidden(msgEditForbidden)
	}

	if email != "" && email != current.Email {
		other, err := s.repo.GetByEmail(ctx, email)
		switch {
		case err == nil && other.ID != current.ID:
			return apperr.Conflict(msgEditEmailTaken)
		case err != nil && !errors.Is(err, apperr.ErrNotFound):
			return apperr.Internal(err)
		}
		current.Email = email
	}

	if in.Password != "" || in.ConfirmPassword != "" {
		if in.Password != in.ConfirmPassword {
			return apperr.Validation(msgEditPasswordsDiffer)
		}
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return apperr.Internal(err)
		}
		current.PasswordHash = hash
	}

	if in.Image != nil {
		if err := images.ValidateExtension(in.Image.Filename); err != nil {
			return err
		}
		if s.images == nil {
			return apperr.Internal(errors.New("users: image store not configured"))
		}
		ref, err := s.images.Save(ctx, images.ResourceUsers, *in.Image)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindValidation {
				return err
			}
			return apperr.Internal(err)
		}
		current.Image = ref
	}

	current.Name = name
	current.Phone = normalizePhone(phone, s.phoneRegion)
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			return apperr.Conflict(msgEditEmailTaken)
		case errors.Is(err, apperr.ErrNotFound):
			return apperr.NotFound(msgUserNotFound)
		}
		return apperr.Internal(err)
	}
	return nil
}
