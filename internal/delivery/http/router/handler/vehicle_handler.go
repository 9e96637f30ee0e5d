package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/delivery/http/response"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VehicleHandler holds dependencies for inventory handlers.
type VehicleHandler struct {
	uc     usecase.VehicleUsecase
	logger *slog.Logger
}

// NewVehicleHandler is the constructor for VehicleHandler, injected by Fx.
func NewVehicleHandler(uc usecase.VehicleUsecase, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{
		uc:     uc,
		logger: logger,
	}
}

type veiculoRequest struct {
	Chassi         string     `json:"chassi" validate:"required,len=17"`
	Modelo         string     `json:"modelo" validate:"required,max=100"`
	VersaoMotor    string     `json:"versaoMotor" validate:"required,max=50"`
	Quilometragem  int64      `json:"quilometragem" validate:"gte=0"`
	AnoFabricacao  int        `json:"anoFabricacao" validate:"required,gte=1950"`
	Cor            string     `json:"cor" validate:"max=30"`
	Preco          float64    `json:"preco" validate:"gte=0"`
	ProprietarioID *uuid.UUID `json:"proprietarioId"`
}

type proprietarioResponse struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Documento string    `json:"documento"`
	Telefone  string    `json:"telefone"`
}

type veiculoResponse struct {
	Chassi         string                `json:"chassi"`
	Modelo         string                `json:"modelo"`
	VersaoMotor    string                `json:"versaoMotor"`
	Quilometragem  int64                 `json:"quilometragem"`
	AnoFabricacao  int                   `json:"anoFabricacao"`
	Cor            string                `json:"cor"`
	Preco          float64               `json:"preco"`
	ProprietarioID *uuid.UUID            `json:"proprietarioId,omitempty"`
	Proprietario   *proprietarioResponse `json:"proprietario,omitempty"`
}

func toVeiculoResponse(v *entity.Veiculo) veiculoResponse {
	resp := veiculoResponse{
		Chassi:         v.Chassi,
		Modelo:         v.Modelo,
		VersaoMotor:    v.VersaoMotor,
		Quilometragem:  v.Quilometragem,
		AnoFabricacao:  v.AnoFabricacao,
		Cor:            v.Cor,
		Preco:          v.Preco,
		ProprietarioID: v.ProprietarioID,
	}
	if v.Proprietario != nil {
		resp.Proprietario = &proprietarioResponse{
			ID:        v.Proprietario.ID,
			Nome:      v.Proprietario.Nome,
			Documento: v.Proprietario.Documento,
			Telefone:  v.Proprietario.Telefone,
		}
	}

	return resp
}

// List handles the inventory listing request. Results are ordered by mileage
// and can be narrowed by engine version.
func (h *VehicleHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	veiculos, err := h.uc.List(c.Request().Context(), &usecase.ListVeiculosInput{
		VersaoMotor: c.QueryParam("versaoMotor"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]veiculoResponse, 0, len(veiculos))
	for _, v := range veiculos {
		items = append(items, toVeiculoResponse(v))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// GetByChassi handles the vehicle detail request.
func (h *VehicleHandler) GetByChassi(c echo.Context) error {
	veiculo, err := h.uc.GetByChassi(c.Request().Context(), c.Param("chassi"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVeiculoResponse(veiculo), "")
}

// Create handles the vehicle registration request.
func (h *VehicleHandler) Create(c echo.Context) error {
	var req veiculoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do caminhão inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	veiculo, err := h.uc.Create(c.Request().Context(), &usecase.CreateVeiculoInput{
		Chassi:         req.Chassi,
		Modelo:         req.Modelo,
		VersaoMotor:    req.VersaoMotor,
		Quilometragem:  req.Quilometragem,
		AnoFabricacao:  req.AnoFabricacao,
		Cor:            req.Cor,
		Preco:          req.Preco,
		ProprietarioID: req.ProprietarioID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toVeiculoResponse(veiculo), "Caminhão cadastrado com sucesso")
}

// Update handles the vehicle update request. The chassis in the path
// identifies the vehicle and must match the one in the body.
func (h *VehicleHandler) Update(c echo.Context) error {
	var req veiculoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do caminhão inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if req.Chassi != c.Param("chassi") {
		return errors.WithStack(domainerrors.ErrChassiMismatch)
	}

	if err := h.uc.Update(c.Request().Context(), &usecase.UpdateVeiculoInput{
		Chassi:         req.Chassi,
		Modelo:         req.Modelo,
		VersaoMotor:    req.VersaoMotor,
		Quilometragem:  req.Quilometragem,
		AnoFabricacao:  req.AnoFabricacao,
		Cor:            req.Cor,
		Preco:          req.Preco,
		ProprietarioID: req.ProprietarioID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Caminhão atualizado com sucesso")
}

// Delete handles the vehicle removal request.
func (h *VehicleHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("chassi")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Caminhão removido com sucesso")
}
