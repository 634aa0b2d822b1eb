package mib

func vmTree() *Node {
	return Dir("vm", CtlVM,
		Leaf("vmmeter", 1, ShapeOpaqueRecord),
		Leaf("loadavg", 2, ShapeOpaqueRecord),
		Leaf("psstrings", 3, ShapeOpaqueRecord),
		Leaf("uvmexp", 4, ShapeOpaqueRecord),
		Dir("swapencrypt", 5,
			Leaf("enable", 0, ShapeInt32).RW(),
			Leaf("keyscreated", 1, ShapeInt32),
			Leaf("keysdeleted", 2, ShapeInt32),
		),
		Leaf("nkmempages", 6, ShapeInt32),
		Leaf("anonmin", 7, ShapeInt32).RW(),
		Leaf("vtextmin", 8, ShapeInt32).RW(),
		Leaf("vnodemin", 9, ShapeInt32).RW(),
		Leaf("maxslp", 10, ShapeInt32),
		Leaf("uspace", 11, ShapeInt32),
		Leaf("malloc_conf", 12, ShapeCString).RW(),
	)
}

func fsTree() *Node {
	return Dir("fs", CtlFS,
		Dir("posix", 1,
			Leaf("setuid", 1, ShapeInt32).RW(),
		),
	)
}

// debugTree is debug.<n>.{name,value}; CTL_DEBUG_MAXID is 20.
func debugTree() *Node {
	return Dir("debug", CtlDebug).Via("variable", Range{Label: "debug variable", Min: 0, Max: 19},
		Branch(
			Leaf("name", 0, ShapeCString),
			Leaf("value", 1, ShapeInt32).RW(),
		))
}

func hwTree() *Node {
	return Dir("hw", CtlHW,
		Leaf("machine", 1, ShapeCString),
		Leaf("model", 2, ShapeCString),
		Leaf("ncpu", 3, ShapeInt32),
		Leaf("byteorder", 4, ShapeInt32),
		Leaf("pagesize", 7, ShapeInt32),
		Leaf("disknames", 8, ShapeCString),
		Leaf("diskstats", 9, ShapeOpaqueRecord),
		Leaf("diskcount", 10, ShapeInt32),
		Marker("sensors", 11),
		Leaf("cpuspeed", 12, ShapeInt32),
		Leaf("setperf", 13, ShapeInt32).RW(),
		Leaf("vendor", 14, ShapeCString),
		Leaf("product", 15, ShapeCString),
		Leaf("version", 16, ShapeCString),
		Leaf("serialno", 17, ShapeCString),
		Leaf("uuid", 18, ShapeCString),
		Leaf("physmem", 19, ShapeInt64),
		Leaf("usermem", 20, ShapeInt64),
		Leaf("ncpufound", 21, ShapeInt32),
		Leaf("allowpowerdown", 22, ShapeInt32).RW(),
		Leaf("perfpolicy", 23, ShapeCString).RW(),
		Leaf("smt", 24, ShapeInt32).RW(),
		Leaf("ncpuonline", 25, ShapeInt32),
	)
}

// machdepTree covers amd64 only; other ports number these differently.
func machdepTree() *Node {
	return Dir("machdep", CtlMachdep,
		Leaf("allowaperture", 5, ShapeInt32),
		Leaf("kbdreset", 10, ShapeInt32),
		Leaf("lidaction", 14, ShapeInt32),
		Leaf("pwraction", 18, ShapeInt32),
	).RW()
}

func ddbTree() *Node {
	return Dir("ddb", CtlDDB,
		Leaf("radix", 1, ShapeInt32),
		Leaf("max_width", 2, ShapeInt32),
		Leaf("max_line", 3, ShapeInt32),
		Leaf("tab_stop_width", 4, ShapeInt32),
		Leaf("panic", 5, ShapeInt32),
		Leaf("console", 6, ShapeInt32),
		Leaf("log", 7, ShapeInt32),
		Leaf("trigger", 8, ShapeInt32),
		Leaf("profile", 9, ShapeInt32),
	).RW()
}

// vfsTree numbers filesystems by their vfsconf type number.
func vfsTree() *Node {
	return Dir("vfs", CtlVFS,
		Marker("mounts", 0),
		Dir("ffs", 1,
			Leaf("clusterread", 1, ShapeInt32),
			Leaf("clusterwrite", 2, ShapeInt32),
			Leaf("reallocblks", 3, ShapeInt32),
			Leaf("asyncfree", 4, ShapeInt32),
			Leaf("max_softdeps", 5, ShapeInt32),
			Leaf("sd_tickdelay", 6, ShapeInt32),
			Leaf("sd_worklist_push", 7, ShapeInt32).RO(),
			Leaf("sd_blk_limit_push", 8, ShapeInt32).RO(),
			Leaf("sd_ino_limit_push", 9, ShapeInt32).RO(),
			Leaf("sd_blk_limit_hit", 10, ShapeInt32).RO(),
			Leaf("sd_ino_limit_hit", 11, ShapeInt32).RO(),
			Leaf("sd_sync_limit_hit", 12, ShapeInt32).RO(),
			Leaf("sd_indir_blk_ptrs", 13, ShapeInt32).RO(),
			Leaf("sd_inode_bitmap", 14, ShapeInt32).RO(),
			Leaf("sd_direct_blk_ptrs", 15, ShapeInt32).RO(),
			Leaf("sd_dir_entry", 16, ShapeInt32).RO(),
			Leaf("dirhash_dirsize", 17, ShapeInt32),
			Leaf("dirhash_maxmem", 18, ShapeInt32),
			Leaf("dirhash_mem", 19, ShapeInt32).RO(),
		).RW(),
		Dir("nfs", 3,
			Leaf("nfsstats", 1, ShapeOpaqueRecord),
			Leaf("iothreads", 2, ShapeInt32).RW(),
		),
		Marker("mfs", 4),
		Marker("msdos", 5),
		Marker("ntfs", 7),
		Marker("udf", 14),
		Marker("cd9660", 15),
		Marker("ext2fs", 18),
		Dir("fuse", 19,
			Leaf("fusefs_open_devices", 1, ShapeInt32),
			Leaf("fusefs_fbufs_in", 2, ShapeInt32),
			Leaf("fusefs_fbufs_wait", 3, ShapeInt32),
			Leaf("fusefs_pool_pages", 4, ShapeInt32),
		),
	)
}
