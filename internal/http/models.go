package http

import "github.com/Flarenzy/ipv4kit/internal/domain"

// AddressResponse is the formatted form of a packed address.
type AddressResponse struct {
	IP    string `json:"ip" example:"192.168.1.1"`
	Value uint32 `json:"value" example:"3232235777"`
}

// ParseAddressRequest is the payload accepted when parsing an address.
type ParseAddressRequest struct {
	IP     string `json:"ip" example:"192.168.1.1"`
	Strict bool   `json:"strict" example:"true"`
}

// ParseAddressResponse reports the parsed address. Without strict parsing an
// invalid input comes back as 0.0.0.0 with unspecified set.
type ParseAddressResponse struct {
	IP          string `json:"ip" example:"192.168.1.1"`
	Value       uint32 `json:"value" example:"3232235777"`
	Unspecified bool   `json:"unspecified" example:"false"`
}

// ValidateNetmaskRequest is the payload accepted when validating a netmask.
type ValidateNetmaskRequest struct {
	Netmask string `json:"netmask" example:"255.255.255.0"`
	Wire    bool   `json:"wire" example:"false"`
}

// NetmaskResponse reports whether a netmask is contiguous.
type NetmaskResponse struct {
	Netmask   string `json:"netmask" example:"255.255.255.0"`
	Value     uint32 `json:"value" example:"4294967040"`
	Valid     bool   `json:"valid" example:"true"`
	PrefixLen *int   `json:"prefix_len,omitempty" example:"24"`
}

// DescribeSubnetRequest is the payload accepted when describing a subnet.
type DescribeSubnetRequest struct {
	IP      string `json:"ip" example:"10.1.2.77"`
	Netmask string `json:"netmask" example:"255.255.255.192"`
}

// SubnetResponse is a simplified view returned to clients and used in Swagger.
type SubnetResponse struct {
	Prefix      string `json:"prefix" example:"10.1.2.64/26"`
	Netmask     string `json:"netmask" example:"255.255.255.192"`
	Network     string `json:"network" example:"10.1.2.64"`
	Broadcast   string `json:"broadcast" example:"10.1.2.127"`
	FirstUsable string `json:"first_usable" example:"10.1.2.65"`
	LastUsable  string `json:"last_usable" example:"10.1.2.126"`
	Usable      uint64 `json:"usable" example:"62"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid netmask"`
}

func (r ParseAddressRequest) toInput() domain.ParseAddressInput {
	return domain.ParseAddressInput{Text: r.IP, Strict: r.Strict}
}

func (r ValidateNetmaskRequest) toInput() domain.ValidateNetmaskInput {
	return domain.ValidateNetmaskInput{Mask: r.Netmask, Wire: r.Wire}
}

func (r DescribeSubnetRequest) toInput() domain.DescribeSubnetInput {
	return domain.DescribeSubnetInput{Address: r.IP, Netmask: r.Netmask}
}

func parsedToResponse(p domain.ParsedAddress) ParseAddressResponse {
	return ParseAddressResponse{
		IP:          p.Canonical,
		Value:       uint32(p.Addr),
		Unspecified: p.Addr.IsUnspecified(),
	}
}

func netmaskToResponse(n domain.NetmaskReport) NetmaskResponse {
	resp := NetmaskResponse{
		Netmask: n.Mask.String(),
		Value:   uint32(n.Mask),
		Valid:   n.Valid,
	}
	if n.Valid {
		prefixLen := n.PrefixLen
		resp.PrefixLen = &prefixLen
	}
	return resp
}

func subnetToResponse(s domain.SubnetInfo) SubnetResponse {
	return SubnetResponse{
		Prefix:      s.Prefix.String(),
		Netmask:     s.Netmask.String(),
		Network:     s.Network.String(),
		Broadcast:   s.Broadcast.String(),
		FirstUsable: s.FirstUsable.String(),
		LastUsable:  s.LastUsable.String(),
		Usable:      s.Usable,
	}
}

