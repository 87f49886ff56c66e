package sonarr

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_sonarr_client.go github.com/availarr/availarr/pkg/sonarr ClientInterface
