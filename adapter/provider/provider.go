package provider

// ProviderType indicates what a provider supplies.
type ProviderType int

const (
	Prefix ProviderType = iota
)

func (pt ProviderType) String() string {
	switch pt {
	case Prefix:
		return "Prefix"
	default:
		return "Unknown"
	}
}

// VehicleType indicates where a provider's payload comes from.
type VehicleType int

const (
	File VehicleType = iota
	HTTP
)

func (v VehicleType) String() string {
	switch v {
	case File:
		return "File"
	case HTTP:
		return "HTTP"
	default:
		return "Unknown"
	}
}

// Vehicle fetches raw payload bytes from one source. Path is the
// local location the payload is (or gets) cached at.
type Vehicle interface {
	Read() ([]byte, error)
	Path() string
	Type() VehicleType
}

// Provider is the common lifecycle of payload-backed providers.
type Provider interface {
	Name() string
	VehicleType() VehicleType
	Type() ProviderType
	Initial() error
	Update() error
}
