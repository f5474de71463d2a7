package resolver

// GetServiceName returns the service name for a port/protocol combination
// protocol: 6=TCP, 17=UDP
func GetServiceName(port uint16, protocol uint8) string {
	if port == 0 {
		return ""
	}

	if protocol == 6 {
		if name, ok := tcpServices[port]; ok {
			return name
		}
	} else if protocol == 17 {
		if name, ok := udpServices[port]; ok {
			return name
		}
	}

	if name, ok := commonServices[port]; ok {
		return name
	}

	return ""
}

// Common services (same port for TCP and UDP)
var commonServices = map[uint16]string{
	7:    "echo",
	20:   "ftp-data",
	21:   "ftp",
	22:   "ssh",
	23:   "telnet",
	25:   "smtp",
	53:   "dns",
	67:   "dhcp-s",
	68:   "dhcp-c",
	69:   "tftp",
	80:   "http",
	88:   "kerberos",
	110:  "pop3",
	123:  "ntp",
	135:  "msrpc",
	137:  "netbios-ns",
	139:  "netbios-ssn",
	143:  "imap",
	161:  "snmp",
	162:  "snmp-trap",
	179:  "bgp",
	389:  "ldap",
	443:  "https",
	445:  "smb",
	465:  "smtps",
	514:  "syslog",
	587:  "submission",
	636:  "ldaps",
	853:  "dns-tls",
	993:  "imaps",
	995:  "pop3s",
	1194: "openvpn",
	1812: "radius",
	2055: "netflow",
	3128: "proxy",
	3306: "mysql",
	3389: "rdp",
	4739: "ipfix",
	5060: "sip",
	5432: "postgres",
	6379: "redis",
	8080: "http-alt",
	8443: "https-alt",
	9090: "prometheus",
	9999: "netflow-alt",
}

// TCP-only services
var tcpServices = map[uint16]string{
	179:   "bgp",
	873:   "rsync",
	2049:  "nfs",
	5900:  "vnc",
	6443:  "kube-api",
	8006:  "proxmox",
	9100:  "node-exp",
	27017: "mongodb",
}

// UDP-only services
var udpServices = map[uint16]string{
	500:  "ike",
	1900: "ssdp",
	4500: "ipsec-nat",
	5353: "mdns",
	6081: "geneve",
	4789: "vxlan",
	51820: "wireguard",
}
