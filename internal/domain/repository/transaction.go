package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle units of work without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a unit of work use the same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository instance bound to the current transaction.
	UserRepo() UserRepository

	// WalletRepo returns a WalletRepository instance bound to the current transaction.
	WalletRepo() WalletRepository

	// TransactionRepo returns a TransactionRepository instance bound to the current transaction.
	TransactionRepo() TransactionRepository

	// BillRepo returns a BillRepository instance bound to the current transaction.
	BillRepo() BillRepository

	// CardRepo returns a CardRepository instance bound to the current transaction.
	CardRepo() CardRepository
}
