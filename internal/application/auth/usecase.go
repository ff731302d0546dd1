package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/bodega-wms/internal/application/dto"
	"github.com/tu-usuario/bodega-wms/internal/domain"
	"github.com/tu-usuario/bodega-wms/internal/domain/repository"
	"github.com/tu-usuario/bodega-wms/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación de operadores.
type AuthUseCase struct {
	operatorRepo repository.OperatorRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(operatorRepo repository.OperatorRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{operatorRepo: operatorRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + operador.
// Username inexistente y password incorrecto devuelven el mismo error para
// no revelar qué cuentas existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	op, err := uc.operatorRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !op.Active() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, op.ID, op.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Operator: dto.OperatorResponse{
			ID:          op.ID,
			Username:    op.Username,
			DisplayName: op.DisplayName,
			Role:        op.Role,
			Status:      op.Status,
			CreatedAt:   op.CreatedAt,
		},
	}, nil
}
