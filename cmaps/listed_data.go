package cmaps

// Listed palettes registered by Load.
var listedData = []struct {
	name   string
	colors []string
}{
	// own palettes, mostly color blind friendly
	{"pastel5", []string{"#3362b0", "#cc3164", "#1ea69c", "#f78746", "#9dd2e7"}},
	{"pastel6", []string{"#2452c7", "#c42f22", "#2aa069", "#67b2cf", "#f8a7ae", "#a6f89c"}},
	{"cbf4", []string{"#1878b1", "#dd6688", "#2dd9cc", "#feeaae"}},
	{"cbf5", []string{"#b94663", "#6fac5d", "#697ed5", "#bc7d39", "#9350a1"}},
	{"cbf8", []string{
		"#0c4daa", "#b70226", "#238494", "#d2651e", "#88a8ba", "#2ad5ad",
		"#fbb5fe", "#faf018",
	}},
	{"pastel_rainbow", []string{
		"#f94144", "#f3722c", "#f8961e", "#f9c74f", "#90be6d", "#43aa8b",
		"#577590",
	}},
	{"pastel_spring", []string{"#ef476f", "#ffd166", "#06d6a0", "#118ab2", "#073b4c"}},
	{"pastel_autunm", []string{"#264653", "#2a9d8f", "#e9c46a", "#f4a261", "#e76f51"}},
	{"ufcd", []string{"#2a6ebb", "#de3831", "#739600", "#e98300", "#a7c1e3"}},
	{"paula", []string{"#fec21f", "#ed6a0c", "#df0712", "#df017b", "#4a287d"}},
	{"summertimes", []string{"#002661", "#38a1ae", "#ffbc42", "#e3170a", "#38a75d", "#a11963"}},

	// Paul Tol, https://personal.sron.nl/~pault/
	{"tol:bright", []string{"#4477aa", "#ee6677", "#228833", "#ccbb44", "#66ccee", "#aa3377"}},
	{"tol:high_contrast", []string{"#004488", "#ddaa33", "#bb5566", "#000000"}},
	{"tol:vibrant", []string{"#ee7733", "#0077bb", "#33bbee", "#ee3377", "#cc3311", "#009988"}},
	{"tol:muted", []string{
		"#cc6677", "#332288", "#ddcc77", "#117733", "#88ccee", "#882255",
		"#44aa99", "#999933", "#aa4499",
	}},
	{"tol:medium_contrast", []string{
		"#6699cc", "#004488", "#eecc66", "#994455", "#997700", "#ee99aa",
	}},
	{"tol:light", []string{
		"#77aadd", "#ee8866", "#eedd88", "#ffaabb", "#99ddff", "#44bb99",
		"#bbcc33", "#aaaa00",
	}},

	// OS GeoDataViz toolkit
	{"gdv:rag", []string{"#e9002d", "#ffaa00", "#00b000"}},
	{"gdv:rag_cvd", []string{"#c40f5b", "#fd8d3c", "#089099"}},
	{"gdv:palette", []string{
		"#ff1f5b", "#00cd6c", "#009ade", "#af58ba", "#ffc61e", "#f28522",
		"#a0b1ba", "#a6761d",
	}},
	{"gdv:6a", []string{"#ff1f5b", "#00cd6c", "#009ade", "#af58ba", "#ffc61e", "#f28522"}},
	{"gdv:5a", []string{"#ff1f5b", "#009ade", "#af58ba", "#ffc61e", "#f28522"}},
	{"gdv:4a", []string{"#ff1f5b", "#009ade", "#af58ba", "#ffc61e"}},
	{"gdv:4b", []string{"#00cd6c", "#009ade", "#af58ba", "#ffc61e"}},
	{"gdv:3a", []string{"#ff1f5b", "#009ade", "#ffc61e"}},
	{"gdv:3b", []string{"#00cd6c", "#af58ba", "#ffc61e"}},
	{"gdv:2a", []string{"#ff1f5b", "#009ade"}},
	{"gdv:2b", []string{"#00cd6c", "#af58ba"}},
	{"gdv:s1", []string{"#e4f1f7", "#c5e1ef", "#9ec9e2", "#6cb0d6", "#3c93c2", "#226e9c", "#0d4a70"}},
	{"gdv:s2", []string{"#e1f2e3", "#cde5d2", "#9ccea7", "#6cba7d", "#40ad5a", "#228b3b", "#06592a"}},
	{"gdv:s3", []string{"#f9d8e6", "#f2acca", "#ed85b0", "#e95694", "#e32977", "#c40f5b", "#8f003b"}},
	{"gdv:m1", []string{"#b7e6a5", "#7ccba2", "#46aea0", "#089099", "#00718b", "#045275", "#003147"}},
	{"gdv:m2", []string{"#fce1a4", "#fabf7b", "#f08f6e", "#e05c5c", "#d12959", "#ab1866", "#6e005f"}},
	{"gdv:m3", []string{"#fff3b2", "#fed976", "#feb24c", "#fd8d3c", "#fc4e2a", "#e31a1c", "#b10026"}},
	{"gdv:d1", []string{"#009392", "#39b185", "#9ccb86", "#e9e29c", "#eeb479", "#e88471", "#cf597e"}},
	{"gdv:d2", []string{"#045275", "#089099", "#7ccba2", "#fcde9c", "#f0746e", "#dc3977", "#7c1d6f"}},
	{"gdv:d3", []string{"#443f90", "#685ba7", "#a599ca", "#f5ddeb", "#f492a5", "#ea6e8a", "#d21c5e"}},
	{"gdv:d4", []string{"#008042", "#6fa253", "#b7c370", "#fce498", "#d78287", "#bf5688", "#7c1d6f"}},
	{"gdv:moon", []string{
		"#fdfce8", "#f1f3e5", "#e4e9e2", "#d7dfdf", "#cad5db", "#bdcbd8",
		"#b1c2d5", "#a4b8d2", "#97aecf", "#8aa4cb",
	}},
	{"gdv:mars", []string{
		"#e6f1e9", "#eaf3e8", "#f0f4e6", "#f7f6e6", "#f5f2df", "#f7e8d5",
		"#edd5c5", "#dcbeb0", "#b59790", "#d6c2c0",
	}},

	// matplotlib default cycle
	{"tab10", []string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b",
		"#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	}},
}
