package mib

import "strconv"

// longArray is the array shape matching C long on the build's port.
func longArray() Shape {
	if strconv.IntSize == 32 {
		return ShapeU32Array
	}
	return ShapeU64Array
}

func kernTree() *Node {
	return Dir("kern", CtlKern,
		Leaf("ostype", 1, ShapeCString),
		Leaf("osrelease", 2, ShapeCString),
		Leaf("osrevision", 3, ShapeInt32),
		Leaf("version", 4, ShapeCString),
		Leaf("maxvnodes", 5, ShapeInt32).RW(),
		Leaf("maxproc", 6, ShapeInt32).RW(),
		Leaf("maxfiles", 7, ShapeInt32).RW(),
		Leaf("argmax", 8, ShapeInt32),
		Leaf("securelevel", 9, ShapeInt32).RW(),
		Leaf("hostname", 10, ShapeCString).RW(),
		Leaf("hostid", 11, ShapeInt32).RW(),
		Leaf("clockrate", 12, ShapeOpaqueRecord),
		Marker("profiling", 16),
		Leaf("posix1version", 17, ShapeInt32),
		Leaf("ngroups", 18, ShapeInt32),
		Leaf("job_control", 19, ShapeInt32),
		Leaf("saved_ids", 20, ShapeInt32),
		Leaf("boottime", 21, ShapeOpaqueRecord),
		Leaf("domainname", 22, ShapeCString).RW(),
		Leaf("maxpartitions", 23, ShapeInt32),
		Leaf("rawpartition", 24, ShapeInt32),
		Leaf("maxthread", 25, ShapeInt32).RW(),
		Leaf("nthreads", 26, ShapeInt32),
		Leaf("osversion", 27, ShapeCString),
		Leaf("somaxconn", 28, ShapeInt32).RW(),
		Leaf("sominconn", 29, ShapeInt32).RW(),
		Leaf("nosuidcoredump", 32, ShapeInt32).RW(),
		Leaf("fsync", 33, ShapeInt32),
		Leaf("sysvmsg", 34, ShapeInt32),
		Leaf("sysvsem", 35, ShapeInt32),
		Leaf("sysvshm", 36, ShapeInt32),
		Leaf("msgbufsize", 38, ShapeInt32),
		Dir("malloc", 39,
			Leaf("buckets", 1, ShapeCString),
			Marker("bucket", 2),
			Leaf("kmemnames", 3, ShapeCString),
			Marker("kmemstat", 4),
		),
		// long[CPUSTATES]
		Leaf("cp_time", 40, longArray()),
		Leaf("nchstats", 41, ShapeOpaqueRecord),
		Leaf("forkstat", 42, ShapeOpaqueRecord),
		Leaf("nselcoll", 43, ShapeInt32),
		Dir("tty", 44,
			Leaf("tk_nin", 1, ShapeInt64),
			Leaf("tk_nout", 2, ShapeInt64),
			Leaf("tk_rawcc", 3, ShapeInt64),
			Leaf("tk_cancc", 4, ShapeInt64),
			Leaf("ttyinfo", 5, ShapeOpaqueRecord),
			Leaf("maxptys", 6, ShapeInt32).RW(),
			Leaf("nptys", 7, ShapeInt32),
		),
		Leaf("ccpu", 45, ShapeInt32),
		Leaf("fscale", 46, ShapeInt32),
		Leaf("nprocs", 47, ShapeInt32),
		Leaf("msgbuf", 48, ShapeOpaqueRecord),
		Marker("pool", 49),
		Leaf("stackgap_random", 50, ShapeInt32),
		Marker("sysvipc_info", 51),
		Leaf("allowkmem", 52, ShapeInt32).RW(),
		Leaf("splassert", 54, ShapeInt32).RW(),
		Marker("procargs", 55),
		Leaf("nfiles", 56, ShapeInt32),
		Leaf("ttycount", 57, ShapeInt32),
		Leaf("numvnodes", 58, ShapeInt32),
		Leaf("mbstat", 59, ShapeOpaqueRecord),
		Marker("witness", 60),
		Dir("seminfo", 61,
			Leaf("semmni", 1, ShapeInt32).RW(),
			Leaf("semmns", 2, ShapeInt32).RW(),
			Leaf("semmnu", 3, ShapeInt32),
			Leaf("semmsl", 4, ShapeInt32).RW(),
			Leaf("semopm", 5, ShapeInt32).RW(),
			Leaf("semume", 6, ShapeInt32),
			Leaf("semusz", 7, ShapeInt32),
			Leaf("semvmx", 8, ShapeInt32),
			Leaf("semaem", 9, ShapeInt32),
		),
		Dir("shminfo", 62,
			Leaf("shmmax", 1, ShapeInt32).RW(),
			Leaf("shmmin", 2, ShapeInt32).RW(),
			Leaf("shmmni", 3, ShapeInt32).RW(),
			Leaf("shmseg", 4, ShapeInt32).RW(),
			Leaf("shmall", 5, ShapeInt32).RW(),
		),
		Marker("intrcnt", 63),
		Dir("watchdog", 64,
			Leaf("period", 1, ShapeInt32).RW(),
			Leaf("auto", 2, ShapeInt32).RW(),
		),
		Marker("proc", 66),
		Leaf("maxclusters", 67, ShapeInt32).RW(),
		Marker("evcount", 68),
		Dir("timecounter", 69,
			Leaf("tick", 1, ShapeInt32),
			Leaf("timestepwarnings", 2, ShapeInt32).RW(),
			Leaf("hardware", 3, ShapeCString).RW(),
			Leaf("choice", 4, ShapeCString),
		),
		Leaf("maxlocksperuid", 70, ShapeInt32).RW(),
		Dir("cp_time2", 71).Via("cpu", Range{Label: "cpu", Min: 0, Max: 255}, Value(longArray())),
		Leaf("bufcachepercent", 72, ShapeInt32).RW(),
		Marker("file", 73),
		Leaf("wxabort", 74, ShapeInt32).RW(),
		Leaf("consdev", 75, ShapeDeviceID),
		Leaf("netlivelocks", 76, ShapeInt32),
		Leaf("pool_debug", 77, ShapeInt32).RW(),
		Marker("proc_cwd", 78),
		Marker("proc_nobroadcastkill", 79),
		Marker("proc_vmmap", 80),
		Leaf("global_ptrace", 81, ShapeInt32).RW(),
		Leaf("consbufsize", 82, ShapeInt32),
		Leaf("consbuf", 83, ShapeOpaqueRecord),
		Dir("audio", 84,
			Leaf("record", 1, ShapeInt32).RW(),
		),
		Marker("cpustats", 85),
		Leaf("pfstatus", 86, ShapeOpaqueRecord),
		Leaf("timeout_stats", 87, ShapeOpaqueRecord),
		Leaf("utc_offset", 88, ShapeInt32).RW(),
		Dir("video", 89,
			Leaf("record", 1, ShapeInt32).RW(),
		),
	)
}
