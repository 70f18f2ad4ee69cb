package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"casino-backend/ledger"
	"casino-backend/utils/logger"
)

type FundsController struct {
	Ledger *ledger.Store
}

func NewFundsController(store *ledger.Store) *FundsController {
	return &FundsController{Ledger: store}
}

type fundsRequest struct {
	Username string  `json:"username" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
}

// Deposit handles POST /api/deposit
func (fc *FundsController) Deposit(c *gin.Context) {
	fc.apply(c, fc.Ledger.Deposit)
}

// Withdraw handles POST /api/withdraw
func (fc *FundsController) Withdraw(c *gin.Context) {
	fc.apply(c, fc.Ledger.Withdraw)
}

func (fc *FundsController) apply(c *gin.Context, op func(string, float64) (float64, error)) {
	var req fundsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and a positive amount are required"})
		return
	}

	balance, err := op(req.Username, req.Amount)
	switch {
	case errors.Is(err, ledger.ErrUnknownUser):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, ledger.ErrInsufficientFunds):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "insufficient funds"})
	case err != nil:
		logger.Errorf("funds %s %v for %s: %v", c.FullPath(), req.Amount, req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transaction failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"username": req.Username, "balance": balance})
	}
}
