// Package model defines the plain data records shared by the node components.
package model

// Coin names the chain family a record belongs to.
type Coin string

// Network names a chain network (mainnet, testnet, regtest, signet).
type Network string

var (
	BTC Coin = "BTC"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)
