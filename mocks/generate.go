package mocks

//go:generate mockgen -destination=./mock_writer.go -package=mocks github.com/rxtech-lab/bond-spread/internal/spread Writer
