// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./module.go -destination=../mocks/mock_module_repository.go -package=mocks ModuleRepositoryIface
//go:generate mockgen -typed -source=./field.go -destination=../mocks/mock_field_repository.go -package=mocks FieldRepositoryIface
//go:generate mockgen -typed -source=./value.go -destination=../mocks/mock_value_repository.go -package=mocks ValueRepositoryIface
