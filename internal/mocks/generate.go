package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name CompetitionProvider --dir ../usecase --output usecase --outpkg usecasemock --filename provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name NameResolver --dir ../usecase --output usecase --outpkg usecasemock --filename resolver_mock.go
