// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./division.go -destination=../mocks/mock_division_repository.go -package=mocks DivisionRepositoryIface
//go:generate mockgen -source=./task.go -destination=../mocks/mock_task_repository.go -package=mocks TaskRepositoryIface
//go:generate mockgen -source=./activity.go -destination=../mocks/mock_activity_repository.go -package=mocks ActivityRepositoryIface
