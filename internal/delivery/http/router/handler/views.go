package handler

import (
	"time"

	"wattpay/internal/domain/entity"

	"github.com/google/uuid"
)

// View models shape what leaves the API. Entities never marshal directly,
// so credential material and internal fields stay out of responses.

// UserView is the public representation of a user account.
type UserView struct {
	ID          uuid.UUID    `json:"id"`
	PhoneNumber string       `json:"phone_number"`
	FullName    string       `json:"full_name"`
	Role        string       `json:"role"`
	Status      string       `json:"status"`
	Agent       *ProfileView `json:"agent_profile,omitempty"`
	Customer    *ProfileView `json:"customer_profile,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ProfileView is the public representation of a wallet-bearing profile.
type ProfileView struct {
	AgentName     string  `json:"agent_name,omitempty"`
	WalletBalance float64 `json:"wallet_balance"`
}

// TransactionView is the public representation of a wallet transaction.
type TransactionView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// BillView is the public representation of an electricity bill.
type BillView struct {
	ID           uuid.UUID  `json:"id"`
	CustomerCode string     `json:"customer_code"`
	TotalAmount  float64    `json:"total_amount"`
	Status       string     `json:"status"`
	ImporterID   uuid.UUID  `json:"importer_id"`
	BuyerID      *uuid.UUID `json:"buyer_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CardView is the public representation of a saved credit card.
type CardView struct {
	ID               uuid.UUID `json:"id"`
	CustomerID       uuid.UUID `json:"customer_id"`
	CardNumberSuffix string    `json:"card_number_suffix"`
	BankName         string    `json:"bank_name"`
	CreatedAt        time.Time `json:"created_at"`
}

func toUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	view := &UserView{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
		FullName:    user.FullName,
		Role:        user.Role.String(),
		Status:      user.Status.String(),
		CreatedAt:   user.CreatedAt,
	}
	if user.AgentProfile != nil {
		view.Agent = &ProfileView{
			AgentName:     user.AgentProfile.AgentName,
			WalletBalance: user.AgentProfile.WalletBalance,
		}
	}
	if user.CustomerProfile != nil {
		view.Customer = &ProfileView{
			WalletBalance: user.CustomerProfile.WalletBalance,
		}
	}

	return view
}

func toUserViews(users []*entity.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

func toTransactionView(transaction *entity.Transaction) *TransactionView {
	if transaction == nil {
		return nil
	}

	return &TransactionView{
		ID:        transaction.ID,
		UserID:    transaction.UserID,
		Type:      transaction.Type.String(),
		Amount:    transaction.Amount,
		Status:    transaction.Status.String(),
		CreatedAt: transaction.CreatedAt,
	}
}

func toTransactionViews(transactions []*entity.Transaction) []*TransactionView {
	views := make([]*TransactionView, 0, len(transactions))
	for _, transaction := range transactions {
		views = append(views, toTransactionView(transaction))
	}

	return views
}

func toBillView(bill *entity.ElectricityBill) *BillView {
	if bill == nil {
		return nil
	}

	return &BillView{
		ID:           bill.ID,
		CustomerCode: bill.CustomerCode,
		TotalAmount:  bill.TotalAmount,
		Status:       bill.Status.String(),
		ImporterID:   bill.ImporterID,
		BuyerID:      bill.BuyerID,
		CreatedAt:    bill.CreatedAt,
	}
}

func toBillViews(bills []*entity.ElectricityBill) []*BillView {
	views := make([]*BillView, 0, len(bills))
	for _, bill := range bills {
		views = append(views, toBillView(bill))
	}

	return views
}

func toCardView(card *entity.CreditCard) *CardView {
	if card == nil {
		return nil
	}

	return &CardView{
		ID:               card.ID,
		CustomerID:       card.CustomerID,
		CardNumberSuffix: card.CardNumberSuffix,
		BankName:         card.BankName,
		CreatedAt:        card.CreatedAt,
	}
}

func toCardViews(cards []*entity.CreditCard) []*CardView {
	views := make([]*CardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, toCardView(card))
	}

	return views
}
