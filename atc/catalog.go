package atc

// DefaultEntries returns the curated ATC prefix to disease code catalog.
//
// Keys of different lengths may both match one code and Resolve unions all of
// them. The trailing specialty keys (P99, Q99, R00, S00, V99, Z99) overlap the
// drug-class entries on purpose.
func DefaultEntries() []Entry {
	return []Entry{
		// A: Alimentary tract and metabolism
		{"A01", Codes(543, 544, 545, 546, 547, 548, 549, 550, 551)},
		{"A02B", Codes(552, 553, 554, 555, 556, 557, 559, 560, 561)},
		{"A02BC", Codes(552, 553, 554, 555, 556, 557, 559, 560, 561, 868, 869, 870)},
		{"A02BA", Codes(552, 553, 554, 555, 556, 559, 560, 561)},
		{"A03", Codes(557, 558, 560, 561, 570, 573)},
		{"A04", Codes(743, 870)},
		{"A05A", Codes(578, 579, 580, 581, 582, 583, 584)},
		{"A05B", Codes(581, 582, 583, 584)},
		{"A06", Codes(570, 572, 573)},
		{"A07A", Codes(1, 2, 3, 4, 5, 8, 12, 13)},
		{"A07E", Codes(564, 565, 566, 567, 568, 569, 576, 577)},
		{"A07", Codes(13, 564, 565, 566, 567, 568, 569, 571, 574, 575, 576, 577, 591)},
		{"A08", Codes(279, 280)},
		{"A09", Codes(585, 586, 587, 588)},
		{"A10A", Codes(241, 242, 243, 244, 245, 246, 247, 746, 749)},
		{"A10B", Codes(241, 242, 243, 244, 245, 246, 247, 746, 749)},
		{"A11A", Codes(266)},
		{"A11C", Codes(270)},
		{"A11CC", Codes(267, 268, 269, 271, 272, 273)},
		{"A11D", Codes(272)},
		{"A11G", Codes(270)},
		{"A11GA", Codes(270)},
		{"A11H", Codes(267, 268, 269, 273)},
		{"A11HA", Codes(267, 268, 269, 273)},
		{"A12", Codes(274, 275, 276, 277, 278, 292)},
		{"A13", Codes(262, 263, 264, 265, 278)},
		{"A14", Codes(262, 263, 264, 265)},
		{"A16", Codes(293, 294)},

		// B: Blood and blood forming organs
		{"B01A", Codes(216, 217, 218, 219, 220, 360, 376, 463, 477, 478, 480, 481, 486, 487, 490)},
		{"B01AC", Codes(376, 459, 460, 461, 477, 478, 480, 481)},
		{"B02", Codes(214, 220, 477, 478, 745, 759, 762, 763, 766, 803)},
		{"B03A", Codes(203, 204, 205, 206, 207, 208, 209, 210, 211, 215)},
		{"B03B", Codes(203, 204, 205, 206, 215)},
		{"B03X", Codes(203, 211, 213, 684, 685, 686)},
		{"B03XA", Codes(203, 211, 213, 684, 685, 686)},
		{"B05", Codes(214, 295, 296)},
		{"B06", Codes(212, 213, 221, 222, 223, 224, 225, 226, 200, 201)},

		// C: Cardiovascular system
		{"C01A", Codes(461, 462, 472, 473, 476)},
		{"C01B", Codes(455, 456, 458, 459, 460, 461, 462)},
		{"C01C", Codes(445, 446, 447, 469, 475)},
		{"C01D", Codes(455, 456, 458, 459, 460, 461, 462, 472, 473, 476)},
		{"C01E", Codes(461, 462, 472, 473, 476)},
		{"C02", Codes(450, 451, 452, 453, 454, 457, 735, 736, 737, 738, 739, 740, 741, 742, 744)},
		{"C03", Codes(450, 451, 452, 453, 454, 462, 495, 740)},
		{"C04", Codes(376, 482, 484, 485, 491)},
		{"C05", Codes(489, 492, 493)},
		{"C07", Codes(450, 451, 452, 453, 454, 455, 456, 458, 459, 460, 461)},
		{"C08", Codes(450, 451, 452, 453, 454, 455, 456, 458, 459, 460)},
		{"C09", Codes(450, 451, 452, 453, 454, 462, 472, 473, 476)},
		{"C10", Codes(289, 479)},
		{"C99", Codes(
			445, 446, 447, 448, 449, 463, 464, 465, 466, 467, 468, 469, 470, 471, 474, 475, 476,
			477, 478, 480, 481, 483, 485, 488, 490, 494, 496, 497,
		)},

		// D: Dermatologicals
		{"D01", Codes(65, 66, 67)},
		{"D02", Codes(592, 596, 597, 599, 600, 601, 602, 622)},
		{"D03", Codes(592, 593, 595, 598, 622)},
		{"D04", Codes(603, 606, 622)},
		{"D05", Codes(600)},
		{"D06", Codes(30, 589, 590, 592, 593, 594)},
		{"D07", Codes(596, 597, 599, 600, 601, 602, 603, 604, 605, 607, 608, 609)},
		{"D08", Codes(589, 590, 592, 594)},
		{"D10", Codes(614, 617, 618)},
		{"D11", Codes(49, 50, 53, 610, 611, 612, 613, 615, 616, 619, 620, 621)},

		// G: Genito-urinary system and sex hormones
		{"G01", Codes(36, 38, 39, 709, 710, 711, 712, 713, 748)},
		{"G02A", Codes(
			733, 734, 735, 736, 737, 747, 750, 751, 752, 753, 754, 755, 756, 757, 758, 759, 760,
			761, 762, 764, 765, 766, 767, 768, 769, 770, 772, 773, 774, 775, 776, 777, 778,
		)},
		{"G02B", Codes(185, 186, 714, 715, 716, 717, 718, 719)},
		{"G02C", Codes(714, 715, 719)},
		{"G03A", Codes(185, 186, 714, 715, 716, 717, 718, 719, 722, 723, 724, 725, 726, 727, 728, 729)},
		{"G03B", Codes(257, 258, 722, 723, 724, 725, 726, 727, 728, 729)},
		{"G03C", Codes(184, 256, 257, 722, 723, 724, 726)},
		{"G03D", Codes(256, 257, 722, 723, 724, 726, 729)},
		{"G03F", Codes(256, 729, 730)},
		{"G03G", Codes(256, 257, 728)},
		{"G03H", Codes(714)},
		{"G03X", Codes(658, 659, 660, 729)},
		{"G03XC", Codes(658, 659, 660, 729)},
		{"G04A", Codes(691, 692, 693, 694, 695, 696)},
		{"G04B", Codes(698, 701)},
		{"G04C", Codes(691, 693, 694, 695, 696, 697, 699, 700, 872)},
		{"G99", Codes(
			670, 671, 672, 673, 674, 675, 676, 677, 678, 679, 680, 681, 682, 683, 684, 685, 686,
			687, 688, 689, 690, 692, 696, 697, 699, 700, 702, 703, 704, 705, 706, 707, 708, 720,
			721, 730, 731, 732,
		)},

		// H: Systemic hormonal preparations
		{"H01A", Codes(250, 251, 258, 259)},
		{"H01B", Codes(250, 251)},
		{"H01C", Codes(250, 251, 259)},
		{"H02", Codes(252, 253, 254, 255, 256)},
		{"H03A", Codes(234, 235, 236, 237)},
		{"H03B", Codes(238, 239)},
		{"H03C", Codes(240)},
		{"H04", Codes(241, 242, 243, 244, 245, 246, 247, 749)},
		{"H05", Codes(248, 249, 272, 274, 658, 659, 660)},
		{"H99", Codes(258, 259, 260, 261, 266, 281, 282, 283, 284, 285, 286, 287, 288, 290, 291, 293, 297)},

		// J: Anti-infectives for systemic use
		{"J01", Codes(
			1, 2, 3, 4, 5, 6, 7, 8, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33,
			34, 35, 36, 37, 39, 40, 41, 42, 43, 44, 356, 357, 358, 359, 498, 499, 500, 501, 502,
			503, 504, 505, 506, 507, 508, 510, 517, 518, 562, 563, 576, 623, 624, 654, 655, 664,
			703, 770, 776, 796, 799, 800, 801, 802,
		)},
		{"J01C", Codes(28, 30, 445, 446, 467, 469, 475)},
		{"J02", Codes(65, 66, 67)},
		{"J04A", Codes(14, 15, 16, 17)},
		{"J04B", Codes(22)},
		{"J05A", Codes(57, 58, 59, 60, 61)},
		{"J05AB", Codes(47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 62, 63, 64, 358, 797, 798)},
		{"J06", Codes(45, 46, 227, 228, 229, 230, 231)},
		{"J07", Codes(1, 2, 3, 26, 27, 28, 45, 46, 51, 52, 54, 55, 56, 62, 989, 990, 994)},

		// L: Antineoplastic and immunomodulating agents
		{"L01", Range(80, 203)},
		{"L02A", Codes(124, 125, 127, 128, 129, 130, 131, 132)},
		{"L02B", Codes(134, 136)},
		{"L03", Codes(57, 58, 59, 60, 61, 227, 228, 229, 230, 231)},
		{"L04", Codes(232, 233, 625, 626, 638, 639, 640, 641, 642)},

		// M: Musculo-skeletal system
		{"M01A", Codes(
			442, 443, 445, 446, 447, 623, 624, 625, 626, 627, 628, 629, 630, 631, 632, 633, 634,
			635, 636, 637, 638, 639, 640, 641, 646, 647,
		)},
		{"M01C", Codes(625, 292)},
		{"M01CC", Codes(625, 292)},
		{"M02", Codes(651, 652, 653, 654, 655, 656, 657)},
		{"M03", Codes(385, 386, 387, 651, 652)},
		{"M04", Codes(627, 290)},
		{"M05A", Codes(658, 659, 660)},
		{"M05B", Codes(662, 665)},
		{"M05", Codes(658, 659, 660, 661, 662, 663, 664, 665, 667, 668)},
		{"M09", Codes(643, 644, 645, 648, 649, 666, 669)},

		// N: Nervous system
		{"N01", Codes(750, 753, 765, 768, 771, 774)},
		{"N02A", Codes(373, 375, 650, 653, 728)},
		{"N02B", Codes(373, 375, 650, 653, 728)},
		{"N02C", Codes(373, 375)},
		{"N03", Codes(371, 372, 374, 814)},
		{"N04", Codes(362, 363, 364, 365, 366, 367)},
		{"N05A", Codes(299, 300, 301, 302, 303, 304, 311, 312, 313, 314, 315, 316, 317, 318, 319)},
		{"N05B", Codes(324, 325, 326, 327)},
		{"N05C", Codes(331, 332, 377)},
		{"N06A", Codes(320, 321, 322, 323)},
		{"N06B", Codes(299, 300, 368)},
		{"N06D", Codes(341, 342, 343, 344, 345, 346, 347, 348, 349, 350)},
		{"N07A", Codes(385, 386, 387)},
		{"N07B", Codes(305, 306, 308, 309, 310, 336)},
		{"N07C", Codes(373, 375)},
		{"N07X", Codes(
			361, 368, 369, 370, 378, 379, 380, 381, 382, 383, 384, 388, 389, 390, 391, 392, 393,
			394, 395, 396,
		)},
		{"N99", Codes(328, 329, 330, 333, 334, 335, 337, 338, 339, 340, 351, 352, 353, 355)},

		// P: Antiparasitic products
		{"P01A", Codes(9, 10, 11)},
		{"P01B", Codes(68)},
		{"P01C", Codes(69, 70)},
		{"P02", Codes(71, 72, 73, 74, 75, 76)},
		{"P03A", Codes(77)},
		{"P03B", Codes(78)},

		// R: Respiratory system
		{"R01A", Codes(498, 499, 511, 512, 513, 514, 515, 516)},
		{"R01B", Codes(511, 514)},
		{"R02", Codes(497, 500, 512, 515, 517, 518)},
		{"R03A", Codes(523, 524, 525, 526, 527)},
		{"R03AC", Codes(523, 524, 525, 526, 527)},
		{"R03AK", Codes(523, 524, 525, 526, 527)},
		{"R03AL", Codes(523, 524, 525, 526, 527)},
		{"R03B", Codes(524, 527)},
		{"R03BA", Codes(524, 527)},
		{"R03BB", Codes(524, 527)},
		{"R03BC", Codes(524, 527)},
		{"R03C", Codes(523, 524, 525, 526, 527)},
		{"R03CA", Codes(523, 524, 525, 526, 527)},
		{"R03CB", Codes(523, 524, 525, 526, 527)},
		{"R03CC", Codes(523, 524, 525, 526, 527)},
		{"R03D", Codes(524, 527)},
		{"R03DA", Codes(524, 527)},
		{"R03DC", Codes(524, 527)},
		{"R03DX", Codes(524, 527)},
		{"R05", Codes(509, 519, 520, 521, 522, 523)},
		{"R06", Codes(511, 514, 603, 606)},
		{"R07", Codes(528, 529, 530, 531, 532, 533, 534, 535, 536, 537, 538, 539, 540, 541, 542)},
		{"R99", Codes(501, 502, 791, 792, 793, 794, 795)},

		// S: Sensory organs
		{"S01A", Codes(402, 404, 405)},
		{"S01B", Codes(404, 405, 407, 408)},
		{"S01E", Codes(412, 415)},
		{"S01F", Codes(407, 408, 409)},
		{"S01G", Codes(409)},
		{"S01H", Codes(410, 411)},
		{"S01J", Codes(410, 411)},
		{"S01K", Codes(410, 411)},
		{"S01L", Codes(413, 414)},
		{"S01X", Codes(406, 409, 410, 411)},
		{"S01", Codes(
			398, 399, 400, 401, 402, 403, 404, 405, 406, 407, 408, 409, 410, 411, 412, 413, 414,
			415, 416, 417, 418, 419, 420, 421, 422, 423, 424, 827, 884, 947, 955,
		)},
		{"S02A", Codes(425, 426, 427, 428, 429)},
		{"S02B", Codes(425, 427, 429)},
		{"S02C", Codes(425, 427, 428, 429, 430, 431, 432, 433)},
		{"S02", Codes(
			425, 426, 427, 428, 429, 430, 431, 432, 433, 434, 435, 436, 437, 438, 439, 440, 441,
			444, 948,
		)},
		{"S03", Codes(398, 425)},

		// V: Various
		{"V01", Codes(511, 514)},
		{"V03A", Codes(960, 961, 964, 965, 986, 987)},
		{"V03", Codes(817, 960, 961, 964, 965, 982, 986, 987)},
		{"V04", Codes(875, 876, 877, 878, 988, 993)},
		{"V06", Codes(262, 263, 264, 265, 783, 784, 816)},
		{"V07", Codes(335, 994, 995, 996, 997, 998)},
		{"V08", Codes(878, 988)},
		{"V09", Codes(878, 988)},
		{"V10", Range(80, 168)},
		{"V20", Codes(
			764, 879, 880, 881, 882, 883, 884, 885, 886, 887, 888, 889, 890, 891, 892, 893, 894,
			895, 896, 897, 898, 899, 900, 901, 902, 903, 904, 905, 906, 907, 908, 909, 910, 911,
			912, 914, 915, 916, 917, 918, 919, 920, 921, 922, 923, 924, 925, 926, 927, 928, 929,
			930, 931, 932, 933, 934, 935, 936, 937, 938, 939, 940, 941, 942, 943, 944, 945, 946,
			949, 950, 951, 952, 953, 954, 955, 956, 957, 958, 959, 962, 963, 966, 967, 968, 969,
			970, 971, 972, 973, 974, 975,
		)},

		// Specialty fallbacks
		{"P99", Codes(
			779, 780, 781, 782, 783, 784, 785, 786, 787, 788, 789, 790, 791, 792, 793, 794, 795,
			797, 798, 799, 800, 801, 802, 803, 804, 805, 806, 807, 808, 809, 810, 811, 812, 813,
			814, 815, 816, 817, 818, 819, 820,
		)},
		{"Q99", Codes(
			821, 822, 823, 824, 825, 826, 827, 828, 829, 830, 831, 832, 833, 834, 835, 836, 837,
			838, 839, 840, 841, 842, 843, 844, 845, 846, 847, 848, 849, 850, 851, 852, 853, 854,
			855, 856, 857, 858, 859, 860, 861, 862, 863, 864, 865, 866, 867, 868,
		)},
		{"R00", Codes(869, 870, 871, 872, 873, 874, 875, 876, 877, 878, 879)},
		{"S00", Range(880, 976)},
		{"V99", Codes(976, 977, 978, 979, 980, 981, 982, 983, 984, 985, 986, 987, 988, 991)},
		{"Z99", Codes(993, 994, 995, 996, 997, 998)},
	}
}
