package radarr

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_radarr_client.go github.com/availarr/availarr/pkg/radarr ClientInterface
