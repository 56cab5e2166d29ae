package cmaps

// https://gist.github.com/FedeMiorelli/640bbc66b2038a14802729e609abfe89
var turboData = [][3]float64{
	{0.18995, 0.07176, 0.23217},
	{0.19483, 0.08339, 0.26149},
	{0.19956, 0.09498, 0.29024},
	{0.20415, 0.10652, 0.31844},
	{0.2086, 0.11802, 0.34607},
	{0.21291, 0.12947, 0.37314},
	{0.21708, 0.14087, 0.39964},
	{0.22111, 0.15223, 0.42558},
	{0.225, 0.16354, 0.45096},
	{0.22875, 0.17481, 0.47578},
	{0.23236, 0.18603, 0.50004},
	{0.23582, 0.1972, 0.52373},
	{0.23915, 0.20833, 0.54686},
	{0.24234, 0.21941, 0.56942},
	{0.24539, 0.23044, 0.59142},
	{0.2483, 0.24143, 0.61286},
	{0.25107, 0.25237, 0.63374},
	{0.25369, 0.26327, 0.65406},
	{0.25618, 0.27412, 0.67381},
	{0.25853, 0.28492, 0.693},
	{0.26074, 0.29568, 0.71162},
	{0.2628, 0.30639, 0.72968},
	{0.26473, 0.31706, 0.74718},
	{0.26652, 0.32768, 0.76412},
	{0.26816, 0.33825, 0.7805},
	{0.26967, 0.34878, 0.79631},
	{0.27103, 0.35926, 0.81156},
	{0.27226, 0.3697, 0.82624},
	{0.27334, 0.38008, 0.84037},
	{0.27429, 0.39043, 0.85393},
	{0.27509, 0.40072, 0.86692},
	{0.27576, 0.41097, 0.87936},
	{0.27628, 0.42118, 0.89123},
	{0.27667, 0.43134, 0.90254},
	{0.27691, 0.44145, 0.91328},
	{0.27701, 0.45152, 0.92347},
	{0.27698, 0.46153, 0.93309},
	{0.2768, 0.47151, 0.94214},
	{0.27648, 0.48144, 0.95064},
	{0.27603, 0.49132, 0.95857},
	{0.27543, 0.50115, 0.96594},
	{0.27469, 0.51094, 0.97275},
	{0.27381, 0.52069, 0.97899},
	{0.27273, 0.5304, 0.98461},
	{0.27106, 0.54015, 0.9893},
	{0.26878, 0.54995, 0.99303},
	{0.26592, 0.55979, 0.99583},
	{0.26252, 0.56967, 0.99773},
	{0.25862, 0.57958, 0.99876},
	{0.25425, 0.5895, 0.99896},
	{0.24946, 0.59943, 0.99835},
	{0.24427, 0.60937, 0.99697},
	{0.23874, 0.61931, 0.99485},
	{0.23288, 0.62923, 0.99202},
	{0.22676, 0.63913, 0.98851},
	{0.22039, 0.64901, 0.98436},
	{0.21382, 0.65886, 0.97959},
	{0.20708, 0.66866, 0.97423},
	{0.20021, 0.67842, 0.96833},
	{0.19326, 0.68812, 0.9619},
	{0.18625, 0.69775, 0.95498},
	{0.17923, 0.70732, 0.94761},
	{0.17223, 0.7168, 0.93981},
	{0.16529, 0.7262, 0.93161},
	{0.15844, 0.73551, 0.92305},
	{0.15173, 0.74472, 0.91416},
	{0.14519, 0.75381, 0.90496},
	{0.13886, 0.76279, 0.8955},
	{0.13278, 0.77165, 0.8858},
	{0.12698, 0.78037, 0.8759},
	{0.12151, 0.78896, 0.86581},
	{0.11639, 0.7974, 0.85559},
	{0.11167, 0.80569, 0.84525},
	{0.10738, 0.81381, 0.83484},
	{0.10357, 0.82177, 0.82437},
	{0.10026, 0.82955, 0.81389},
	{0.0975, 0.83714, 0.80342},
	{0.09532, 0.84455, 0.79299},
	{0.09377, 0.85175, 0.78264},
	{0.09287, 0.85875, 0.7724},
	{0.09267, 0.86554, 0.7623},
	{0.0932, 0.87211, 0.75237},
	{0.09451, 0.87844, 0.74265},
	{0.09662, 0.88454, 0.73316},
	{0.09958, 0.8904, 0.72393},
	{0.10342, 0.896, 0.715},
	{0.10815, 0.90142, 0.70599},
	{0.11374, 0.90673, 0.69651},
	{0.12014, 0.91193, 0.6866},
	{0.12733, 0.91701, 0.67627},
	{0.13526, 0.92197, 0.66556},
	{0.14391, 0.9268, 0.65448},
	{0.15323, 0.93151, 0.64308},
	{0.16319, 0.93609, 0.63137},
	{0.17377, 0.94053, 0.61938},
	{0.18491, 0.94484, 0.60713},
	{0.19659, 0.94901, 0.59466},
	{0.20877, 0.95304, 0.58199},
	{0.22142, 0.95692, 0.56914},
	{0.23449, 0.96065, 0.55614},
	{0.24797, 0.96423, 0.54303},
	{0.2618, 0.96765, 0.52981},
	{0.27597, 0.97092, 0.51653},
	{0.29042, 0.97403, 0.50321},
	{0.30513, 0.97697, 0.48987},
	{0.32006, 0.97974, 0.47654},
	{0.33517, 0.98234, 0.46325},
	{0.35043, 0.98477, 0.45002},
	{0.36581, 0.98702, 0.43688},
	{0.38127, 0.98909, 0.42386},
	{0.39678, 0.99098, 0.41098},
	{0.41229, 0.99268, 0.39826},
	{0.42778, 0.99419, 0.38575},
	{0.44321, 0.99551, 0.37345},
	{0.45854, 0.99663, 0.3614},
	{0.47375, 0.99755, 0.34963},
	{0.48879, 0.99828, 0.33816},
	{0.50362, 0.99879, 0.32701},
	{0.51822, 0.9991, 0.31622},
	{0.53255, 0.99919, 0.30581},
	{0.54658, 0.99907, 0.29581},
	{0.56026, 0.99873, 0.28623},
	{0.57357, 0.99817, 0.27712},
	{0.58646, 0.99739, 0.26849},
	{0.59891, 0.99638, 0.26038},
	{0.61088, 0.99514, 0.2528},
	{0.62233, 0.99366, 0.24579},
	{0.63323, 0.99195, 0.23937},
	{0.64362, 0.98999, 0.23356},
	{0.65394, 0.98775, 0.22835},
	{0.66428, 0.98524, 0.2237},
	{0.67462, 0.98246, 0.2196},
	{0.68494, 0.97941, 0.21602},
	{0.69525, 0.9761, 0.21294},
	{0.70553, 0.97255, 0.21032},
	{0.71577, 0.96875, 0.20815},
	{0.72596, 0.9647, 0.2064},
	{0.7361, 0.96043, 0.20504},
	{0.74617, 0.95593, 0.20406},
	{0.75617, 0.95121, 0.20343},
	{0.76608, 0.94627, 0.20311},
	{0.77591, 0.94113, 0.2031},
	{0.78563, 0.93579, 0.20336},
	{0.79524, 0.93025, 0.20386},
	{0.80473, 0.92452, 0.20459},
	{0.8141, 0.91861, 0.20552},
	{0.82333, 0.91253, 0.20663},
	{0.83241, 0.90627, 0.20788},
	{0.84133, 0.89986, 0.20926},
	{0.8501, 0.89328, 0.21074},
	{0.85868, 0.88655, 0.2123},
	{0.86709, 0.87968, 0.21391},
	{0.8753, 0.87267, 0.21555},
	{0.88331, 0.86553, 0.21719},
	{0.89112, 0.85826, 0.2188},
	{0.8987, 0.85087, 0.22038},
	{0.90605, 0.84337, 0.22188},
	{0.91317, 0.83576, 0.22328},
	{0.92004, 0.82806, 0.22456},
	{0.92666, 0.82025, 0.2257},
	{0.93301, 0.81236, 0.22667},
	{0.93909, 0.80439, 0.22744},
	{0.94489, 0.79634, 0.228},
	{0.95039, 0.78823, 0.22831},
	{0.9556, 0.78005, 0.22836},
	{0.96049, 0.77181, 0.22811},
	{0.96507, 0.76352, 0.22754},
	{0.96931, 0.75519, 0.22663},
	{0.97323, 0.74682, 0.22536},
	{0.97679, 0.73842, 0.22369},
	{0.98, 0.73, 0.22161},
	{0.98289, 0.7214, 0.21918},
	{0.98549, 0.7125, 0.2165},
	{0.98781, 0.7033, 0.21358},
	{0.98986, 0.69382, 0.21043},
	{0.99163, 0.68408, 0.20706},
	{0.99314, 0.67408, 0.20348},
	{0.99438, 0.66386, 0.19971},
	{0.99535, 0.65341, 0.19577},
	{0.99607, 0.64277, 0.19165},
	{0.99654, 0.63193, 0.18738},
	{0.99675, 0.62093, 0.18297},
	{0.99672, 0.60977, 0.17842},
	{0.99644, 0.59846, 0.17376},
	{0.99593, 0.58703, 0.16899},
	{0.99517, 0.57549, 0.16412},
	{0.99419, 0.56386, 0.15918},
	{0.99297, 0.55214, 0.15417},
	{0.99153, 0.54036, 0.1491},
	{0.98987, 0.52854, 0.14398},
	{0.98799, 0.51667, 0.13883},
	{0.9859, 0.50479, 0.13367},
	{0.9836, 0.49291, 0.12849},
	{0.98108, 0.48104, 0.12332},
	{0.97837, 0.4692, 0.11817},
	{0.97545, 0.4574, 0.11305},
	{0.97234, 0.44565, 0.10797},
	{0.96904, 0.43399, 0.10294},
	{0.96555, 0.42241, 0.09798},
	{0.96187, 0.41093, 0.0931},
	{0.95801, 0.39958, 0.08831},
	{0.95398, 0.38836, 0.08362},
	{0.94977, 0.37729, 0.07905},
	{0.94538, 0.36638, 0.07461},
	{0.94084, 0.35566, 0.07031},
	{0.93612, 0.34513, 0.06616},
	{0.93125, 0.33482, 0.06218},
	{0.92623, 0.32473, 0.05837},
	{0.92105, 0.31489, 0.05475},
	{0.91572, 0.3053, 0.05134},
	{0.91024, 0.29599, 0.04814},
	{0.90463, 0.28696, 0.04516},
	{0.89888, 0.27824, 0.04243},
	{0.89298, 0.26981, 0.03993},
	{0.88691, 0.26152, 0.03753},
	{0.88066, 0.25334, 0.03521},
	{0.87422, 0.24526, 0.03297},
	{0.8676, 0.2373, 0.03082},
	{0.86079, 0.22945, 0.02875},
	{0.8538, 0.2217, 0.02677},
	{0.84662, 0.21407, 0.02487},
	{0.83926, 0.20654, 0.02305},
	{0.83172, 0.19912, 0.02131},
	{0.82399, 0.19182, 0.01966},
	{0.81608, 0.18462, 0.01809},
	{0.80799, 0.17753, 0.0166},
	{0.79971, 0.17055, 0.0152},
	{0.79125, 0.16368, 0.01387},
	{0.7826, 0.15693, 0.01264},
	{0.77377, 0.15028, 0.01148},
	{0.76476, 0.14374, 0.01041},
	{0.75556, 0.13731, 0.00942},
	{0.74617, 0.13098, 0.00851},
	{0.73661, 0.12477, 0.00769},
	{0.72686, 0.11867, 0.00695},
	{0.71692, 0.11268, 0.00629},
	{0.7068, 0.1068, 0.00571},
	{0.6965, 0.10102, 0.00522},
	{0.68602, 0.09536, 0.00481},
	{0.67535, 0.0898, 0.00449},
	{0.66449, 0.08436, 0.00424},
	{0.65345, 0.07902, 0.00408},
	{0.64223, 0.0738, 0.00401},
	{0.63082, 0.06868, 0.00401},
	{0.61923, 0.06367, 0.0041},
	{0.60746, 0.05878, 0.00427},
	{0.5955, 0.05399, 0.00453},
	{0.58336, 0.04931, 0.00486},
	{0.57103, 0.04474, 0.00529},
	{0.55852, 0.04028, 0.00579},
	{0.54583, 0.03593, 0.00638},
	{0.53295, 0.03169, 0.00705},
	{0.51989, 0.02756, 0.0078},
	{0.50664, 0.02354, 0.00863},
	{0.49321, 0.01963, 0.00955},
	{0.4796, 0.01583, 0.01055},
}

// https://stackoverflow.com/a/43264077
var parulaData = [][3]float64{
	{0.2081, 0.1663, 0.5292},
	{0.2116238095, 0.1897809524, 0.5776761905},
	{0.212252381, 0.2137714286, 0.6269714286},
	{0.2081, 0.2386, 0.6770857143},
	{0.1959047619, 0.2644571429, 0.7279},
	{0.1707285714, 0.2919380952, 0.779247619},
	{0.1252714286, 0.3242428571, 0.8302714286},
	{0.0591333333, 0.3598333333, 0.8683333333},
	{0.0116952381, 0.3875095238, 0.8819571429},
	{0.0059571429, 0.4086142857, 0.8828428571},
	{0.0165142857, 0.4266, 0.8786333333},
	{0.032852381, 0.4430428571, 0.8719571429},
	{0.0498142857, 0.4585714286, 0.8640571429},
	{0.0629333333, 0.4736904762, 0.8554380952},
	{0.0722666667, 0.4886666667, 0.8467},
	{0.0779428571, 0.5039857143, 0.8383714286},
	{0.079347619, 0.5200238095, 0.8311809524},
	{0.0749428571, 0.5375428571, 0.8262714286},
	{0.0640571429, 0.5569857143, 0.8239571429},
	{0.0487714286, 0.5772238095, 0.8228285714},
	{0.0343428571, 0.5965809524, 0.819852381},
	{0.0265, 0.6137, 0.8135},
	{0.0238904762, 0.6286619048, 0.8037619048},
	{0.0230904762, 0.6417857143, 0.7912666667},
	{0.0227714286, 0.6534857143, 0.7767571429},
	{0.0266619048, 0.6641952381, 0.7607190476},
	{0.0383714286, 0.6742714286, 0.743552381},
	{0.0589714286, 0.6837571429, 0.7253857143},
	{0.0843, 0.6928333333, 0.7061666667},
	{0.1132952381, 0.7015, 0.6858571429},
	{0.1452714286, 0.7097571429, 0.6646285714},
	{0.1801333333, 0.7176571429, 0.6424333333},
	{0.2178285714, 0.7250428571, 0.6192619048},
	{0.2586428571, 0.7317142857, 0.5954285714},
	{0.3021714286, 0.7376047619, 0.5711857143},
	{0.3481666667, 0.7424333333, 0.5472666667},
	{0.3952571429, 0.7459, 0.5244428571},
	{0.4420095238, 0.7480809524, 0.5033142857},
	{0.4871238095, 0.7490619048, 0.4839761905},
	{0.5300285714, 0.7491142857, 0.4661142857},
	{0.5708571429, 0.7485190476, 0.4493904762},
	{0.609852381, 0.7473142857, 0.4336857143},
	{0.6473, 0.7456, 0.4188},
	{0.6834190476, 0.7434761905, 0.4044333333},
	{0.7184095238, 0.7411333333, 0.3904761905},
	{0.7524857143, 0.7384, 0.3768142857},
	{0.7858428571, 0.7355666667, 0.3632714286},
	{0.8185047619, 0.7327333333, 0.3497904762},
	{0.8506571429, 0.7299, 0.3360285714},
	{0.8824333333, 0.7274333333, 0.3217},
	{0.9139333333, 0.7257857143, 0.3062761905},
	{0.9449571429, 0.7261142857, 0.2886428571},
	{0.9738952381, 0.7313952381, 0.266647619},
	{0.9937714286, 0.7454571429, 0.240347619},
	{0.9990428571, 0.7653142857, 0.2164142857},
	{0.9955333333, 0.7860571429, 0.196652381},
	{0.988, 0.8066, 0.1793666667},
	{0.9788571429, 0.8271428571, 0.1633142857},
	{0.9697, 0.8481380952, 0.147452381},
	{0.9625857143, 0.8705142857, 0.1309},
	{0.9588714286, 0.8949, 0.1132428571},
	{0.9598238095, 0.9218333333, 0.0948380952},
	{0.9661, 0.9514428571, 0.0755333333},
	{0.9763, 0.9831, 0.0538},
}

// https://github.com/1313e/e13Tools (rainforest)
var rainforestData = [][3]float64{
	{0.0, 0.0, 0.0},
	{0.000353476194, 0.000182128532, 0.000285292393},
	{0.00128648133, 0.000604952487, 0.001028415},
	{0.00278017166, 0.00120244959, 0.00221135028},
	{0.00484079934, 0.00193869612, 0.0038456055},
	{0.00747951036, 0.00278742, 0.00595280407},
	{0.010709447, 0.00372704018, 0.00856159},
	{0.0145426691, 0.00473958882, 0.0117051323},
	{0.0189926028, 0.00580831889, 0.0154230567},
	{0.0240709391, 0.00691841293, 0.0197593286},
	{0.0297895546, 0.00805560408, 0.0247642589},
	{0.0361579283, 0.00920708406, 0.0304925529},
	{0.0430901453, 0.0103591405, 0.0370083865},
	{0.0500276406, 0.0115003649, 0.0442085031},
	{0.0569088885, 0.0126187517, 0.0515557985},
	{0.0637372189, 0.0137026074, 0.0590359398},
	{0.0705146531, 0.0147405403, 0.0666638341},
	{0.0772420892, 0.0157214724, 0.074453538},
	{0.0839194424, 0.0166346663, 0.0824183084},
	{0.0905457534, 0.0174697689, 0.0905706046},
	{0.0971192764, 0.0182168672, 0.0989220532},
	{0.103637553, 0.018866558, 0.107483385},
	{0.110097962, 0.0194093546, 0.116265536},
	{0.116497299, 0.0198361963, 0.125278722},
	{0.122830667, 0.0201404192, 0.13452913},
	{0.129094391, 0.0203134986, 0.144026364},
	{0.135282731, 0.0203504127, 0.153774345},
	{0.141390108, 0.0202463701, 0.163777072},
	{0.147410864, 0.0199971405, 0.174038136},
	{0.153338507, 0.0196008892, 0.184557944},
	{0.159166081, 0.019057931, 0.195334444},
	{0.164886466, 0.0183702645, 0.206364167},
	{0.170492181, 0.0175423736, 0.217641329},
	{0.175975498, 0.016581196, 0.229158286},
	{0.181328338, 0.015496791, 0.240904992},
	{0.186542119, 0.0143035017, 0.252867824},
	{0.191608074, 0.0130190896, 0.265031454},
	{0.19651733, 0.0116640974, 0.277380326},
	{0.201260183, 0.0102664317, 0.289892706},
	{0.205826901, 0.00885675152, 0.302547974},
	{0.210207067, 0.00747321542, 0.315320539},
	{0.214389971, 0.00615792912, 0.328185512},
	{0.218364203, 0.00496177901, 0.341112577},
	{0.222117899, 0.00394128125, 0.354071},
	{0.225638565, 0.00315967025, 0.367028637},
	{0.228913107, 0.0026892146, 0.37994912},
	{0.231927841, 0.00260910946, 0.392795088},
	{0.234668506, 0.00300632621, 0.405527106},
	{0.237120326, 0.00397542838, 0.418103792},
	{0.239268104, 0.00561814483, 0.430481999},
	{0.241096359, 0.00804265142, 0.442617064},
	{0.242589506, 0.0113625146, 0.454463142},
	{0.243732082, 0.0156952585, 0.465973637},
	{0.244509031, 0.0211605299, 0.477101734},
	{0.244906024, 0.0278778601, 0.48780105},
	{0.244909751, 0.0359640332, 0.498026544},
	{0.244508511, 0.0452731733, 0.507734905},
	{0.243692554, 0.0548546354, 0.516885797},
	{0.24245442, 0.0645968866, 0.525442917},
	{0.240789345, 0.0744664269, 0.533374864},
	{0.238695762, 0.0844303364, 0.540655881},
	{0.236175394, 0.0944560034, 0.547266839},
	{0.233233443, 0.104511158, 0.553195767},
	{0.229878817, 0.114564021, 0.558438166},
	{0.226123592, 0.124584033, 0.562997277},
	{0.221983123, 0.134542105, 0.566883744},
	{0.217475637, 0.144411136, 0.570115227},
	{0.212622022, 0.154166302, 0.572715757},
	{0.207444756, 0.16378577, 0.574714842},
	{0.201967619, 0.173250746, 0.576146416},
	{0.196215325, 0.182545494, 0.577047823},
	{0.190212875, 0.191657426, 0.577458734},
	{0.183985075, 0.200577021, 0.577420124},
	{0.177556785, 0.209297339, 0.576973623},
	{0.170951381, 0.2178144, 0.576160245},
	{0.164190677, 0.226126769, 0.575019705},
	{0.1572956, 0.234234864, 0.573590292},
	{0.150287878, 0.242140044, 0.571909442},
	{0.143183053, 0.24984699, 0.570009948},
	{0.136001211, 0.257359378, 0.567925271},
	{0.128755069, 0.264683954, 0.565683245},
	{0.121460891, 0.271826562, 0.56331179},
	{0.114131497, 0.278794343, 0.560835186},
	{0.106778114, 0.285594918, 0.55827508},
	{0.0994120817, 0.292235833, 0.555651453},
	{0.0920438514, 0.298724787, 0.552982131},
	{0.084683132, 0.305069537, 0.550282909},
	{0.0773390591, 0.311277811, 0.5475677},
	{0.0700203915, 0.317357249, 0.544848666},
	{0.0627357496, 0.323315349, 0.542136366},
	{0.0554939147, 0.329159427, 0.539439887},
	{0.0483042241, 0.334896594, 0.536766974},
	{0.0411771146, 0.340533729, 0.534124149},
	{0.0343130064, 0.346077433, 0.531516962},
	{0.02823151, 0.351533798, 0.528950896},
	{0.022911381, 0.356909308, 0.526428283},
	{0.0183169164, 0.362209808, 0.523951917},
	{0.0144136143, 0.367440623, 0.521524933},
	{0.0111600939, 0.372607549, 0.519146969},
	{0.00852042533, 0.377715424, 0.516819853},
	{0.00645349447, 0.382769424, 0.514542467},
	{0.00492165063, 0.387774064, 0.512314948},
	{0.00388400837, 0.392734028, 0.510135184},
	{0.0033034305, 0.397653366, 0.508002445},
	{0.00313921748, 0.402536394, 0.505913292},
	{0.00335533946, 0.407386749, 0.503866072},
	{0.00391350248, 0.412208237, 0.501856881},
	{0.00477762678, 0.417004337, 0.499881992},
	{0.00591468686, 0.421778136, 0.497938282},
	{0.00729035189, 0.426532866, 0.496020463},
	{0.00887382075, 0.431271373, 0.494123841},
	{0.0106372833, 0.435996221, 0.492243862},
	{0.0125538605, 0.440709946, 0.490374688},
	{0.0145999838, 0.445414826, 0.488510504},
	{0.0167553831, 0.450112913, 0.48664535},
	{0.019003724, 0.454805995, 0.484773356},
	{0.0213311377, 0.459495783, 0.482887707},
	{0.0237282403, 0.464183719, 0.480981732},
	{0.0261899073, 0.468871033, 0.479048639},
	{0.0287155064, 0.473558744, 0.477081538},
	{0.0313091732, 0.478247653, 0.475073504},
	{0.0339793902, 0.482938403, 0.47301725},
	{0.0367399915, 0.487631406, 0.470905652},
	{0.0396099701, 0.492326871, 0.468731581},
	{0.0425449492, 0.497024815, 0.466487941},
	{0.0455024227, 0.501725064, 0.464167708},
	{0.0485169552, 0.506427268, 0.461763882},
	{0.0516145175, 0.511130897, 0.459269609},
	{0.0548210513, 0.515835251, 0.45667819},
	{0.0581619962, 0.520539465, 0.453983087},
	{0.0616618458, 0.525242527, 0.451177941},
	{0.0653435732, 0.529943301, 0.44825642},
	{0.0692286469, 0.534640487, 0.445212626},
	{0.0733364019, 0.539332668, 0.442040819},
	{0.0776838422, 0.544018315, 0.43873546},
	{0.0822855069, 0.548695792, 0.435291227},
	{0.0871532395, 0.553363405, 0.431702653},
	{0.0922966911, 0.558019313, 0.427964983},
	{0.097723048, 0.5626616, 0.424073623},
	{0.103437204, 0.567288286, 0.420024078},
	{0.10944196, 0.57189736, 0.415811549},
	{0.115738499, 0.576486708, 0.411431828},
	{0.122326484, 0.581054122, 0.406881275},
	{0.129204237, 0.585597382, 0.402155887},
	{0.136369222, 0.590114273, 0.397250689},
	{0.143817968, 0.594602378, 0.392163134},
	{0.151546519, 0.599059329, 0.386889173},
	{0.159550828, 0.603482732, 0.381423983},
	{0.167825965, 0.607870015, 0.375765482},
	{0.176367917, 0.612218696, 0.369907926},
	{0.185171639, 0.616526104, 0.363849032},
	{0.194233235, 0.620789592, 0.357583433},
	{0.203548047, 0.625006386, 0.351108159},
	{0.213112912, 0.629173674, 0.344417163},
	{0.222923193, 0.633288534, 0.337508077},
	{0.232977119, 0.63734796, 0.330372994},
	{0.243270754, 0.64134885, 0.323008812},
	{0.253801494, 0.645288007, 0.315410003},
	{0.26456806, 0.649162069, 0.307568925},
	{0.27556862, 0.652967571, 0.299479136},
	{0.286801308, 0.656700935, 0.291134224},
	{0.298265145, 0.660358414, 0.282526113},
	{0.309959408, 0.663936098, 0.273646054},
	{0.321883538, 0.667429922, 0.264484575},
	{0.334037042, 0.670835661, 0.255031445},
	{0.346419362, 0.67414894, 0.245275629},
	{0.359030675, 0.677365138, 0.235203747},
	{0.371870886, 0.680479474, 0.224801348},
	{0.384936985, 0.683487393, 0.214056654},
	{0.39822972, 0.686383673, 0.202949604},
	{0.411743899, 0.689163805, 0.191466604},
	{0.425478944, 0.691822457, 0.179583211},
	{0.439426522, 0.694355468, 0.167283065},
	{0.453579155, 0.696758578, 0.154543455},
	{0.467926061, 0.699028208, 0.141341125},
	{0.482452378, 0.701161782, 0.127652859},
	{0.497138395, 0.703158103, 0.113456355},
	{0.511958893, 0.705017767, 0.0987316962},
	{0.526884735, 0.706743083, 0.0834601182},
	{0.541876732, 0.708339871, 0.0676412891},
	{0.556892465, 0.709816241, 0.0512958703},
	{0.571881773, 0.711184068, 0.0346760376},
	{0.586792395, 0.712457856, 0.0209649897},
	{0.601568114, 0.713655461, 0.0114450064},
	{0.616154664, 0.714796522, 0.00628441703},
	{0.630500789, 0.715902031, 0.00561289743},
	{0.644561719, 0.716993005, 0.00951989452},
	{0.658301168, 0.718089413, 0.0180592372},
	{0.671690082, 0.719210135, 0.0312558271},
	{0.684711592, 0.720370675, 0.0484904356},
	{0.697354375, 0.721585017, 0.06611147},
	{0.709615979, 0.722863985, 0.0834727592},
	{0.721499953, 0.724215908, 0.100549931},
	{0.733013719, 0.725647192, 0.117351596},
	{0.74416804, 0.727162345, 0.133899292},
	{0.75497589, 0.728764307, 0.150219198},
	{0.765450703, 0.730455151, 0.166336935},
	{0.775606655, 0.732235933, 0.182277611},
	{0.785459269, 0.734106368, 0.198067713},
	{0.795020595, 0.736067163, 0.213725321},
	{0.804305241, 0.738117145, 0.229273568},
	{0.813325398, 0.740255707, 0.244730254},
	{0.822091822, 0.74248244, 0.260109798},
	{0.830615388, 0.744796344, 0.275427632},
	{0.838905818, 0.747196533, 0.29069728},
	{0.846971671, 0.749682302, 0.30593027},
	{0.854820622, 0.752253017, 0.321136975},
	{0.862459468, 0.754908158, 0.33632669},
	{0.869893957, 0.757647466, 0.351506872},
	{0.877129232, 0.760470699, 0.366684847},
	{0.88416978, 0.763377677, 0.381867823},
	{0.891019134, 0.766368511, 0.397061523},
	{0.897679908, 0.769443648, 0.412269816},
	{0.904154205, 0.772603581, 0.427496852},
	{0.910443576, 0.775848858, 0.442747359},
	{0.916548532, 0.779180573, 0.45802267},
	{0.922469234, 0.78259973, 0.473325989},
	{0.92820506, 0.786107675, 0.488658912},
	{0.933754723, 0.78970603, 0.50402183},
	{0.939116393, 0.793396495, 0.519416077},
	{0.944287525, 0.797181184, 0.534840323},
	{0.949265018, 0.801062274, 0.550294619},
	{0.954045137, 0.805042327, 0.565776363},
	{0.958623545, 0.809124035, 0.581283689},
	{0.962995355, 0.813310402, 0.596812675},
	{0.967155101, 0.817604622, 0.612359124},
	{0.971096821, 0.822010126, 0.627917381},
	{0.974814101, 0.826530545, 0.643480555},
	{0.978300108, 0.83116968, 0.659040618},
	{0.981547785, 0.835931479, 0.674587533},
	{0.98454982, 0.840819971, 0.690110152},
	{0.987299046, 0.845839201, 0.705594692},
	{0.989788351, 0.850993161, 0.721026119},
	{0.99201133, 0.856285638, 0.73638624},
	{0.993962157, 0.861720139, 0.751655428},
	{0.995636502, 0.867299648, 0.766810613},
	{0.99703146, 0.873026523, 0.781827039},
	{0.998146534, 0.878902191, 0.796676907},
	{0.998983982, 0.884926952, 0.811330289},
	{0.999549279, 0.891099767, 0.825755689},
	{0.999852301, 0.897417862, 0.839919357},
	{0.999906813, 0.903876775, 0.853788057},
	{0.999732621, 0.910469718, 0.86732686},
	{0.999353324, 0.917188176, 0.880504379},
	{0.998800923, 0.92402056, 0.893287138},
	{0.998109732, 0.93095404, 0.905649266},
	{0.997323589, 0.937972434, 0.917563643},
	{0.996492897, 0.945057135, 0.929007032},
	{0.995676036, 0.952186765, 0.939959052},
	{0.994948959, 0.95933417, 0.950394419},
	{0.994422261, 0.966460907, 0.960272181},
	{0.994324199, 0.973490281, 0.969478452},
	{0.996026094, 0.979967385, 0.977162988},
	{0.997755513, 0.98647064, 0.98470323},
	{0.999047345, 0.993159479, 0.992341391},
	{1.0, 1.0, 1.0},
}
