package mock_sbom

//go:generate -command mockgen go run go.uber.org/mock/mockgen -destination=./mocks.go github.com/quay/layerbom/sbom
//go:generate mockgen Generator
