package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	Carts() CartRepository
	Orders() OrderRepository
	Addresses() AddressRepository
	Reviews() ReviewRepository
	Passcodes() PasscodeRepository
	Analytics() AnalyticsRepository
}
