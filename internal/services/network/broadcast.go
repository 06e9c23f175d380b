// Package network resolves Art-Net broadcast destinations from local interfaces.
package network

import (
	"errors"
	"fmt"
	"net"
)

// ErrNoBroadcast is returned when an interface has no IPv4 broadcast address.
var ErrNoBroadcast = errors.New("network: interface has no IPv4 broadcast address")

// calculateBroadcast computes the broadcast address from IP and netmask
func calculateBroadcast(ip net.IP, mask net.IPMask) net.IP {
	if ip == nil || mask == nil {
		return nil
	}

	// Convert to 4-byte IPv4 representation
	ip4 := ip.To4()
	if ip4 == nil {
		return nil
	}

	// Ensure mask is also 4 bytes
	if len(mask) == 16 {
		mask = mask[12:16]
	}
	if len(mask) != 4 {
		return nil
	}

	broadcast := make(net.IP, 4)
	for i := 0; i < 4; i++ {
		broadcast[i] = ip4[i] | ^mask[i]
	}

	return broadcast
}

// broadcastFromAddrs returns the broadcast address of the first IPv4 network in addrs.
func broadcastFromAddrs(addrs []net.Addr) (net.IP, bool) {
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		if broadcast := calculateBroadcast(ipNet.IP, ipNet.Mask); broadcast != nil {
			return broadcast, true
		}
	}
	return nil, false
}

// BroadcastForInterface returns the IPv4 broadcast address of the named interface.
func BroadcastForInterface(name string) (string, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return "", fmt.Errorf("failed to find interface %s: %w", name, err)
	}
	if iface.Flags&net.FlagUp == 0 {
		return "", fmt.Errorf("interface %s is down", name)
	}

	addrs, err := iface.Addrs()
	if err != nil {
		return "", fmt.Errorf("failed to read addresses of %s: %w", name, err)
	}

	broadcast, ok := broadcastFromAddrs(addrs)
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrNoBroadcast)
	}
	return broadcast.String(), nil
}

// ResolveBroadcast returns the broadcast address of iface, or fallback when
// iface is empty.
func ResolveBroadcast(iface, fallback string) (string, error) {
	if iface == "" {
		return fallback, nil
	}
	return BroadcastForInterface(iface)
}
