// Package restockv1 содержит сгенерированный контракт OrderService и клиентов
// внешних сервисов каталога и пользователей.
package restockv1

//go:generate protoc -I ../../.. --go_out=../../.. --go_opt=paths=source_relative --go-grpc_out=../../.. --go-grpc_opt=paths=source_relative proto/restock/v1/order_service.proto
