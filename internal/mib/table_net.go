package mib

import "math"

// Protocol family and IPPROTO_* numbers used below net.
const (
	pfInet  int32 = 2
	pfRoute int32 = 17
	pfInet6 int32 = 24
	pfKey   int32 = 30
	pfBPF   int32 = 31
	pfMPLS  int32 = 33
	pfPipex int32 = 35

	ipprotoIP      int32 = 0
	ipprotoICMP    int32 = 1
	ipprotoIPIP    int32 = 4
	ipprotoTCP     int32 = 6
	ipprotoUDP     int32 = 17
	ipprotoIPv6    int32 = 41
	ipprotoGRE     int32 = 47
	ipprotoESP     int32 = 50
	ipprotoAH      int32 = 51
	ipprotoMobile  int32 = 55
	ipprotoICMPv6  int32 = 58
	ipprotoEtherIP int32 = 97
	ipprotoIPComp  int32 = 108
	ipprotoCARP    int32 = 112
	ipprotoDivert  int32 = 258
)

var (
	routeTable    = Range{Label: "routing table", Min: 0, Max: 255}
	routeProtocol = Range{Label: "protocol", Min: 0, Max: 0}
	routeFlags    = Range{Label: "rtflags", Min: 0, Max: math.MaxInt32}
	ifIndex       = Range{Label: "interface index", Min: 0, Max: math.MaxUint16}
)

// ifq declares an IFQCTL_* queue node.
func ifq(name string, code int32) *Node {
	return Dir(name, code,
		Leaf("len", 1, ShapeInt32),
		Leaf("maxlen", 2, ShapeInt32).RW(),
		Leaf("drops", 3, ShapeInt32),
		Leaf("congestion", 4, ShapeInt32),
	)
}

func netTree() *Node {
	return Dir("net", CtlNet,
		routeTree(),
		inetTree(),
		inet6Tree(),
		Dir("key", pfKey,
			Leaf("sadb_dump", 1, ShapeOpaqueRecord),
			Leaf("spd_dump", 2, ShapeOpaqueRecord),
		),
		Dir("bpf", pfBPF,
			Leaf("bufsize", 1, ShapeInt32).RW(),
			Leaf("maxbufsize", 2, ShapeInt32).RW(),
		),
		Dir("mpls", pfMPLS,
			Leaf("ttl", 2, ShapeInt32).RW(),
			Leaf("maxloop_inkernel", 4, ShapeInt32).RW(),
			Leaf("mapttl_ip", 5, ShapeInt32).RW(),
			Leaf("mapttl_ip6", 6, ShapeInt32).RW(),
		),
		Dir("pipex", pfPipex,
			Leaf("enable", 1, ShapeInt32).RW(),
			ifq("inq", 2),
			ifq("outq", 3),
		),
	)
}

// routeTree is net.route.<protocol>.<family>.<op>[.<arg>...].
func routeTree() *Node {
	ops := Branch(
		Dir("dump", 1).ViaOptional("table", routeTable, 0, Value(ShapeOpaqueRecord)),
		Dir("flags", 2).Via("flags", routeFlags,
			Branch().ViaOptional("table", routeTable, 0, Value(ShapeOpaqueRecord))),
		Dir("iflist", 3).ViaOptional("ifindex", ifIndex, 0, Value(ShapeOpaqueRecord)),
		Leaf("stats", 4, ShapeOpaqueRecord),
		Dir("table", 5).Via("table", routeTable, Value(ShapeOpaqueRecord)),
		Leaf("ifnames", 6, ShapeOpaqueRecord),
	)
	return Dir("route", pfRoute).Via("protocol", routeProtocol,
		Branch().Via("family", Families, ops))
}

func inetTree() *Node {
	return Dir("inet", pfInet,
		Dir("ip", ipprotoIP,
			Leaf("forwarding", 1, ShapeInt32).RW(),
			Leaf("redirect", 2, ShapeInt32).RW(),
			Leaf("ttl", 3, ShapeInt32).RW(),
			Leaf("sourceroute", 5, ShapeInt32).RW(),
			Leaf("directed-broadcast", 6, ShapeInt32).RW(),
			Leaf("portfirst", 7, ShapeInt32).RW(),
			Leaf("portlast", 8, ShapeInt32).RW(),
			Leaf("porthifirst", 9, ShapeInt32).RW(),
			Leaf("porthilast", 10, ShapeInt32).RW(),
			Leaf("maxqueue", 11, ShapeInt32).RW(),
			Leaf("encdebug", 12, ShapeInt32).RW(),
			Leaf("ipsec-expire-acquire", 14, ShapeInt32).RW(),
			Leaf("ipsec-invalid-life", 15, ShapeInt32).RW(),
			Leaf("ipsec-pfs", 16, ShapeInt32).RW(),
			Leaf("ipsec-soft-allocs", 17, ShapeInt32).RW(),
			Leaf("ipsec-allocs", 18, ShapeInt32).RW(),
			Leaf("ipsec-soft-bytes", 19, ShapeInt32).RW(),
			Leaf("ipsec-bytes", 20, ShapeInt32).RW(),
			Leaf("ipsec-timeout", 21, ShapeInt32).RW(),
			Leaf("ipsec-soft-timeout", 22, ShapeInt32).RW(),
			Leaf("ipsec-soft-firstuse", 23, ShapeInt32).RW(),
			Leaf("ipsec-firstuse", 24, ShapeInt32).RW(),
			Leaf("ipsec-enc-alg", 25, ShapeCString).RW(),
			Leaf("ipsec-auth-alg", 26, ShapeCString).RW(),
			Leaf("mtudisc", 27, ShapeInt32).RW(),
			Leaf("mtudisctimeout", 28, ShapeInt32).RW(),
			Leaf("ipsec-comp-alg", 29, ShapeCString).RW(),
			ifq("ifq", 30),
			Leaf("mforwarding", 31, ShapeInt32).RW(),
			Leaf("multipath", 32, ShapeInt32).RW(),
			Leaf("stats", 33, ShapeOpaqueRecord),
			Leaf("arptimeout", 39, ShapeInt32).RW(),
			Leaf("arpdown", 40, ShapeInt32).RW(),
		),
		Dir("icmp", ipprotoICMP,
			Leaf("maskrepl", 1, ShapeInt32).RW(),
			Leaf("bmcastecho", 2, ShapeInt32).RW(),
			Leaf("errppslimit", 3, ShapeInt32).RW(),
			Leaf("rediraccept", 4, ShapeInt32).RW(),
			Leaf("redirtimeout", 5, ShapeInt32).RW(),
			Leaf("tstamprepl", 6, ShapeInt32).RW(),
			Leaf("stats", 7, ShapeOpaqueRecord),
		),
		Dir("ipip", ipprotoIPIP,
			Leaf("allow", 1, ShapeInt32).RW(),
			Leaf("stats", 2, ShapeOpaqueRecord),
		),
		Dir("tcp", ipprotoTCP,
			Leaf("rfc1323", 1, ShapeInt32).RW(),
			Leaf("keepinittime", 2, ShapeInt32).RW(),
			Leaf("keepidle", 3, ShapeInt32).RW(),
			Leaf("keepintvl", 4, ShapeInt32).RW(),
			Leaf("slowhz", 5, ShapeInt32),
			Leaf("baddynamic", 6, ShapeU32Array).RW(),
			Leaf("ident", 9, ShapeOpaqueRecord),
			Leaf("sack", 10, ShapeInt32).RW(),
			Leaf("mssdflt", 11, ShapeInt32).RW(),
			Leaf("rstppslimit", 12, ShapeInt32).RW(),
			Leaf("ackonpush", 13, ShapeInt32).RW(),
			Leaf("ecn", 14, ShapeInt32).RW(),
			Leaf("syncachelimit", 15, ShapeInt32).RW(),
			Leaf("synbucketlimit", 16, ShapeInt32).RW(),
			Leaf("rfc3390", 17, ShapeInt32).RW(),
			Leaf("reasslimit", 18, ShapeInt32).RW(),
			// takes a struct tcp_ident_mapping naming the connection
			Leaf("drop", 19, ShapeOpaqueRecord).RW(),
			Leaf("sackholelimit", 20, ShapeInt32).RW(),
			Leaf("stats", 21, ShapeOpaqueRecord),
			Leaf("always_keepalive", 22, ShapeInt32).RW(),
			Leaf("synuselimit", 23, ShapeInt32).RW(),
			Leaf("rootonly", 24, ShapeU32Array).RW(),
			Leaf("synhashsize", 25, ShapeInt32).RW(),
		),
		Dir("udp", ipprotoUDP,
			Leaf("checksum", 1, ShapeInt32).RW(),
			Leaf("baddynamic", 2, ShapeU32Array).RW(),
			Leaf("recvspace", 3, ShapeInt32).RW(),
			Leaf("sendspace", 4, ShapeInt32).RW(),
			Leaf("stats", 5, ShapeOpaqueRecord),
			Leaf("rootonly", 6, ShapeU32Array).RW(),
		),
		Dir("gre", ipprotoGRE,
			Leaf("allow", 1, ShapeInt32).RW(),
			Leaf("wccp", 2, ShapeInt32).RW(),
		),
		Dir("esp", ipprotoESP,
			Leaf("enable", 1, ShapeInt32).RW(),
			Leaf("udpencap", 2, ShapeInt32).RW(),
			Leaf("udpencap_port", 3, ShapeInt32).RW(),
			Leaf("stats", 4, ShapeOpaqueRecord),
		),
		Dir("ah", ipprotoAH,
			Leaf("enable", 1, ShapeInt32).RW(),
			Leaf("stats", 2, ShapeOpaqueRecord),
		),
		Dir("mobileip", ipprotoMobile,
			Leaf("allow", 1, ShapeInt32).RW(),
		),
		Dir("etherip", ipprotoEtherIP,
			Leaf("allow", 1, ShapeInt32).RW(),
			Leaf("stats", 2, ShapeOpaqueRecord),
		),
		Dir("ipcomp", ipprotoIPComp,
			Leaf("enable", 1, ShapeInt32).RW(),
			Leaf("stats", 2, ShapeOpaqueRecord),
		),
		Dir("carp", ipprotoCARP,
			Leaf("allow", 1, ShapeInt32).RW(),
			Leaf("preempt", 2, ShapeInt32).RW(),
			Leaf("log", 3, ShapeInt32).RW(),
			Leaf("stats", 4, ShapeOpaqueRecord),
		),
		Dir("divert", ipprotoDivert,
			Leaf("recvspace", 1, ShapeInt32).RW(),
			Leaf("sendspace", 2, ShapeInt32).RW(),
			Leaf("stats", 3, ShapeOpaqueRecord),
		),
	)
}

func inet6Tree() *Node {
	return Dir("inet6", pfInet6,
		Dir("ip6", ipprotoIPv6,
			Leaf("forwarding", 1, ShapeInt32).RW(),
			Leaf("redirect", 2, ShapeInt32).RW(),
			Leaf("hlim", 3, ShapeInt32).RW(),
			Leaf("maxfragpackets", 9, ShapeInt32).RW(),
			Leaf("log_interval", 14, ShapeInt32).RW(),
			Leaf("hdrnestlimit", 15, ShapeInt32).RW(),
			Leaf("dad_count", 16, ShapeInt32).RW(),
			Leaf("auto_flowlabel", 17, ShapeInt32).RW(),
			Leaf("defmcasthlim", 18, ShapeInt32).RW(),
			Leaf("use_deprecated", 21, ShapeInt32).RW(),
			Leaf("maxfrags", 41, ShapeInt32).RW(),
			Leaf("mforwarding", 42, ShapeInt32).RW(),
			Leaf("multipath", 43, ShapeInt32).RW(),
			Leaf("multicast_mtudisc", 44, ShapeInt32).RW(),
			Leaf("neighborgcthresh", 45, ShapeInt32).RW(),
			Leaf("maxdynroutes", 48, ShapeInt32).RW(),
			Leaf("dad_pending", 49, ShapeInt32),
			Leaf("mtudisctimeout", 50, ShapeInt32).RW(),
			ifq("ifq", 51),
			Leaf("soiikey", 54, ShapeByteArray).RW(),
		),
		Dir("icmp6", ipprotoICMPv6,
			Leaf("rediraccept", 2, ShapeInt32).RW(),
			Leaf("redirtimeout", 3, ShapeInt32).RW(),
			Leaf("nd6_delay", 8, ShapeInt32).RW(),
			Leaf("nd6_umaxtries", 9, ShapeInt32).RW(),
			Leaf("nd6_maxtries", 10, ShapeInt32).RW(),
			Leaf("errppslimit", 14, ShapeInt32).RW(),
			Leaf("nd6_maxnudhint", 15, ShapeInt32).RW(),
			Leaf("mtudisc_hiwat", 16, ShapeInt32).RW(),
			Leaf("mtudisc_lowat", 17, ShapeInt32).RW(),
			Leaf("nd6_debug", 18, ShapeInt32).RW(),
		),
		Dir("divert", ipprotoDivert,
			Leaf("recvspace", 1, ShapeInt32).RW(),
			Leaf("sendspace", 2, ShapeInt32).RW(),
			Leaf("stats", 3, ShapeOpaqueRecord),
		),
	)
}
