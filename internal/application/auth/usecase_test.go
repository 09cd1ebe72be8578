package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/stockledger-api/internal/application/auth"
	"github.com/tu-usuario/stockledger-api/internal/application/dto"
	"github.com/tu-usuario/stockledger-api/internal/domain"
	"github.com/tu-usuario/stockledger-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/stockledger-api/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria, indexado por email y CPF.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByCPF(cpf string) (*entity.User, error) {
	for _, u := range r.users {
		if u.CPF == cpf {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) { return r.users, nil }
func (r *fakeUserRepo) Update(*entity.User) error     { return nil }
func (r *fakeUserRepo) Delete(string) error           { return nil }

func newAuthUC(repo *fakeUserRepo) *auth.UseCase {
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "stockledger-api-test",
	})
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "secreto123",
		CPF:      "123.456.789-09",
		Phone:    "(11) 91234-5678",
	}
}

func TestRegister_CreaUsuarioConRolUserYHashBcrypt(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(repo)

	out, err := uc.Register(validRegister())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, entity.RoleUser, out.Role, "el registro siempre crea rol user, nunca admin")

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "la contraseña jamás se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegister_EmailDuplicado_RetornaConflicto(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(repo)

	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	dup := validRegister()
	dup.CPF = "987.654.321-00" // mismo email, otro CPF
	_, err = uc.Register(dup)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.users, 1)
}

func TestRegister_CPFDuplicado_RetornaConflicto(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(repo)

	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	dup := validRegister()
	dup.Email = "otra@example.com" // mismo CPF, otro email
	_, err = uc.Register(dup)
	assert.ErrorIs(t, err, domain.ErrCPFAlreadyExists)
	assert.Len(t, repo.users, 1)
}

func TestLogin_CredencialesCorrectas_RetornaTokenConClaims(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(repo)

	registered, err := uc.Register(validRegister())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, entity.RoleUser, role)
}

func TestLogin_PasswordIncorrecto_RetornaUnauthorized(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(repo)

	_, err := uc.Register(validRegister())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_MismoErrorQuePasswordMalo(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(repo)

	// El error no distingue "email no existe" de "password incorrecto".
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
