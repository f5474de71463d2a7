package types

import "fmt"

// FieldType identifies an IPFIX Information Element as assigned by IANA
// (https://www.iana.org/assignments/ipfix/ipfix.xhtml). Only the identifiers
// below are known to the collector; a template referencing any other id is
// rejected at install time.
type FieldType uint16

const (
	Reserved                                  FieldType = 0
	OctetDeltaCount                           FieldType = 1
	PacketDeltaCount                          FieldType = 2
	DeltaFlowCount                            FieldType = 3
	ProtocolIdentifier                        FieldType = 4
	IPClassOfService                          FieldType = 5
	TcpControlBits                            FieldType = 6
	SourceTransportPort                       FieldType = 7
	SourceIPv4Address                         FieldType = 8
	SourceIPv4PrefixLength                    FieldType = 9
	IngressInterface                          FieldType = 10
	DestinationTransportPort                  FieldType = 11
	DestinationIPv4Address                    FieldType = 12
	DestinationIPv4PrefixLength               FieldType = 13
	EgressInterface                           FieldType = 14
	IpNextHopIPv4Address                      FieldType = 15
	BgpSourceAsNumber                         FieldType = 16
	BgpDestinationAsNumber                    FieldType = 17
	BgpNextHopIPv4Address                     FieldType = 18
	PostMCastPacketDeltaCount                 FieldType = 19
	PostMCastOctetDeltaCount                  FieldType = 20
	FlowEndSysUpTime                          FieldType = 21
	FlowStartSysUpTime                        FieldType = 22
	PostOctetDeltaCount                       FieldType = 23
	PostPacketDeltaCount                      FieldType = 24
	MinimumIpTotalLength                      FieldType = 25
	MaximumIpTotalLength                      FieldType = 26
	SourceIPv6Address                         FieldType = 27
	DestinationIPv6Address                    FieldType = 28
	SourceIPv6PrefixLength                    FieldType = 29
	DestinationIPv6PrefixLength               FieldType = 30
	FlowLabelIPv6                             FieldType = 31
	IcmpTypeCodeIPv4                          FieldType = 32
	IgmpType                                  FieldType = 33
	SamplingInterval                          FieldType = 34
	SamplingAlgorithm                         FieldType = 35
	FlowActiveTimeout                         FieldType = 36
	FlowIdleTimeout                           FieldType = 37
	EngineType                                FieldType = 38
	EngineID                                  FieldType = 39
	ExportedOctetTotalCount                   FieldType = 40
	ExportedMessageTotalCount                 FieldType = 41
	ExportedFlowRecordTotalCount              FieldType = 42
	Ipv4RouterSc                              FieldType = 43
	SourceIPv4Prefix                          FieldType = 44
	DestinationIPv4Prefix                     FieldType = 45
	MplsTopLabelType                          FieldType = 46
	MplsTopLabelIPv4Address                   FieldType = 47
	SamplerID                                 FieldType = 48
	SamplerMode                               FieldType = 49
	SamplerRandomInterval                     FieldType = 50
	ClassID                                   FieldType = 51
	MinimumTTL                                FieldType = 52
	MaximumTTL                                FieldType = 53
	FragmentIdentification                    FieldType = 54
	PostIpClassOfService                      FieldType = 55
	SourceMacAddress                          FieldType = 56
	PostDestinationMacAddress                 FieldType = 57
	VlanID                                    FieldType = 58
	PostVlanID                                FieldType = 59
	IPVersion                                 FieldType = 60
	FlowDirection                             FieldType = 61
	IpNextHopIPv6Address                      FieldType = 62
	BgpNextHopIPv6Address                     FieldType = 63
	Ipv6ExtensionHeaders                      FieldType = 64
	MplsTopLabelStackSection                  FieldType = 70
	MplsLabelStackSection2                    FieldType = 71
	MplsLabelStackSection3                    FieldType = 72
	MplsLabelStackSection4                    FieldType = 73
	MplsLabelStackSection5                    FieldType = 74
	MplsLabelStackSection6                    FieldType = 75
	MplsLabelStackSection7                    FieldType = 76
	MplsLabelStackSection8                    FieldType = 77
	MplsLabelStackSection9                    FieldType = 78
	MplsLabelStackSection10                   FieldType = 79
	DestinationMacAddress                     FieldType = 80
	PostSourceMacAddress                      FieldType = 81
	InterfaceName                             FieldType = 82
	InterfaceDescription                      FieldType = 83
	SamplerName                               FieldType = 84
	OctetTotalCount                           FieldType = 85
	PacketTotalCount                          FieldType = 86
	FlagsAndSamplerID                         FieldType = 87
	FragmentOffset                            FieldType = 88
	ForwardingStatus                          FieldType = 89
	MplsVpnRouteDistinguisher                 FieldType = 90
	MplsTopLabelPrefixLength                  FieldType = 91
	SrcTrafficIndex                           FieldType = 92
	DstTrafficIndex                           FieldType = 93
	ApplicationDescription                    FieldType = 94
	ApplicationID                             FieldType = 95
	ApplicationName                           FieldType = 96
	PostIpDiffServCodePoint                   FieldType = 98
	MulticastReplicationFactor                FieldType = 99
	ClassName                                 FieldType = 100
	ClassificationEngineID                    FieldType = 101
	Layer2PacketSectionOffset                 FieldType = 102
	Layer2PacketSectionSize                   FieldType = 103
	Layer2PacketSectionData                   FieldType = 104
	BgpNextAdjacentAsNumber                   FieldType = 128
	BgpPrevAdjacentAsNumber                   FieldType = 129
	ExporterIPv4Address                       FieldType = 130
	ExporterIPv6Address                       FieldType = 131
	DroppedOctetDeltaCount                    FieldType = 132
	DroppedPacketDeltaCount                   FieldType = 133
	DroppedOctetTotalCount                    FieldType = 134
	DroppedPacketTotalCount                   FieldType = 135
	FlowEndReason                             FieldType = 136
	CommonPropertiesID                        FieldType = 137
	ObservationPointID                        FieldType = 138
	IcmpTypeCodeIPv6                          FieldType = 139
	MplsTopLabelIPv6Address                   FieldType = 140
	LineCardID                                FieldType = 141
	PortID                                    FieldType = 142
	MeteringProcessID                         FieldType = 143
	ExportingProcessID                        FieldType = 144
	TemplateID                                FieldType = 145
	WlanChannelID                             FieldType = 146
	WlanSSID                                  FieldType = 147
	FlowID                                    FieldType = 148
	ObservationDomainID                       FieldType = 149
	FlowStartSeconds                          FieldType = 150
	FlowEndSeconds                            FieldType = 151
	FlowStartMilliseconds                     FieldType = 152
	FlowEndMilliseconds                       FieldType = 153
	FlowStartMicroseconds                     FieldType = 154
	FlowEndMicroseconds                       FieldType = 155
	FlowStartNanoseconds                      FieldType = 156
	FlowEndNanoseconds                        FieldType = 157
	FlowStartDeltaMicroseconds                FieldType = 158
	FlowEndDeltaMicroseconds                  FieldType = 159
	SystemInitTimeMilliseconds                FieldType = 160
	FlowDurationMilliseconds                  FieldType = 161
	FlowDurationMicroseconds                  FieldType = 162
	ObservedFlowTotalCount                    FieldType = 163
	IgnoredPacketTotalCount                   FieldType = 164
	IgnoredOctetTotalCount                    FieldType = 165
	NotSentFlowTotalCount                     FieldType = 166
	NotSentPacketTotalCount                   FieldType = 167
	NotSentOctetTotalCount                    FieldType = 168
	DestinationIPv6Prefix                     FieldType = 169
	SourceIPv6Prefix                          FieldType = 170
	PostOctetTotalCount                       FieldType = 171
	PostPacketTotalCount                      FieldType = 172
	FlowKeyIndicator                          FieldType = 173
	PostMCastPacketTotalCount                 FieldType = 174
	PostMCastOctetTotalCount                  FieldType = 175
	IcmpTypeIPv4                              FieldType = 176
	IcmpCodeIPv4                              FieldType = 177
	IcmpTypeIPv6                              FieldType = 178
	IcmpCodeIPv6                              FieldType = 179
	UdpSourcePort                             FieldType = 180
	UdpDestinationPort                        FieldType = 181
	TcpSourcePort                             FieldType = 182
	TcpDestinationPort                        FieldType = 183
	TcpSequenceNumber                         FieldType = 184
	TcpAcknowledgementNumber                  FieldType = 185
	TcpWindowSize                             FieldType = 186
	TcpUrgentPointer                          FieldType = 187
	TcpHeaderLength                           FieldType = 188
	IpHeaderLength                            FieldType = 189
	TotalLengthIPv4                           FieldType = 190
	PayloadLengthIPv6                         FieldType = 191
	IpTTL                                     FieldType = 192
	NextHeaderIPv6                            FieldType = 193
	MplsPayloadLength                         FieldType = 194
	IpDiffServCodePoint                       FieldType = 195
	IpPrecedence                              FieldType = 196
	FragmentFlags                             FieldType = 197
	OctetDeltaSumOfSquares                    FieldType = 198
	OctetTotalSumOfSquares                    FieldType = 199
	MplsTopLabelTTL                           FieldType = 200
	MplsLabelStackLength                      FieldType = 201
	MplsLabelStackDepth                       FieldType = 202
	MplsTopLabelExp                           FieldType = 203
	IPPayloadLength                           FieldType = 204
	UdpMessageLength                          FieldType = 205
	IsMulticast                               FieldType = 206
	IPv4IHL                                   FieldType = 207
	IPv4Options                               FieldType = 208
	TcpOptions                                FieldType = 209
	PaddingOctets                             FieldType = 210
	CollectorIPv4Address                      FieldType = 211
	CollectorIPv6Address                      FieldType = 212
	ExportInterface                           FieldType = 213
	ExportProtocolVersion                     FieldType = 214
	ExportTransportProtocol                   FieldType = 215
	CollectorTransportPort                    FieldType = 216
	ExporterTransportPort                     FieldType = 217
	TcpSynTotalCount                          FieldType = 218
	TcpFinTotalCount                          FieldType = 219
	TcpRstTotalCount                          FieldType = 220
	TcpPshTotalCount                          FieldType = 221
	TcpAckTotalCount                          FieldType = 222
	TcpUrgTotalCount                          FieldType = 223
	IpTotalLength                             FieldType = 224
	PostNATSourceIPv4Address                  FieldType = 225
	PostNATDestinationIPv4Address             FieldType = 226
	PostNAPTSourceTransportPort               FieldType = 227
	PostNAPTDestinationTransportPort          FieldType = 228
	NatOriginatingAddressRealm                FieldType = 229
	NatEvent                                  FieldType = 230
	InitiatorOctets                           FieldType = 231
	ResponderOctets                           FieldType = 232
	FirewallEvent                             FieldType = 233
	IngressVRFID                              FieldType = 234
	EgressVRFID                               FieldType = 235
	VRFname                                   FieldType = 236
	PostMplsTopLabelExp                       FieldType = 237
	TcpWindowScale                            FieldType = 238
	BiflowDirection                           FieldType = 239
	EthernetHeaderLength                      FieldType = 240
	EthernetPayloadLength                     FieldType = 241
	EthernetTotalLength                       FieldType = 242
	Dot1qVlanID                               FieldType = 243
	Dot1qPriority                             FieldType = 244
	Dot1qCustomerVlanID                       FieldType = 245
	Dot1qCustomerPriority                     FieldType = 246
	MetroEvcID                                FieldType = 247
	MetroEvcType                              FieldType = 248
	PseudoWireID                              FieldType = 249
	PseudoWireType                            FieldType = 250
	PseudoWireControlWord                     FieldType = 251
	IngressPhysicalInterface                  FieldType = 252
	EgressPhysicalInterface                   FieldType = 253
	PostDot1qVlanID                           FieldType = 254
	PostDot1qCustomerVlanID                   FieldType = 255
	EthernetType                              FieldType = 256
	PostIpPrecedence                          FieldType = 257
	CollectionTimeMilliseconds                FieldType = 258
	ExportSctpStreamID                        FieldType = 259
	MaxExportSeconds                          FieldType = 260
	MaxFlowEndSeconds                         FieldType = 261
	MessageMD5Checksum                        FieldType = 262
	MessageScope                              FieldType = 263
	MinExportSeconds                          FieldType = 264
	MinFlowStartSeconds                       FieldType = 265
	OpaqueOctets                              FieldType = 266
	SessionScope                              FieldType = 267
	MaxFlowEndMicroseconds                    FieldType = 268
	MaxFlowEndMilliseconds                    FieldType = 269
	MaxFlowEndNanoseconds                     FieldType = 270
	MinFlowStartMicroseconds                  FieldType = 271
	MinFlowStartMilliseconds                  FieldType = 272
	MinFlowStartNanoseconds                   FieldType = 273
	CollectorCertificate                      FieldType = 274
	ExporterCertificate                       FieldType = 275
	DataRecordsReliability                    FieldType = 276
	ObservationPointType                      FieldType = 277
	NewConnectionDeltaCount                   FieldType = 278
	ConnectionSumDurationSeconds              FieldType = 279
	ConnectionTransactionID                   FieldType = 280
	PostNATSourceIPv6Address                  FieldType = 281
	PostNATDestinationIPv6Address             FieldType = 282
	NatPoolID                                 FieldType = 283
	NatPoolName                               FieldType = 284
	AnonymizationFlags                        FieldType = 285
	AnonymizationTechnique                    FieldType = 286
	InformationElementIndex                   FieldType = 287
	P2PTechnology                             FieldType = 288
	TunnelTechnology                          FieldType = 289
	EncryptedTechnology                       FieldType = 290
	BasicList                                 FieldType = 291
	SubTemplateList                           FieldType = 292
	SubTemplateMultiList                      FieldType = 293
	BgpValidityState                          FieldType = 294
	IPSecSPI                                  FieldType = 295
	GreKey                                    FieldType = 296
	NatType                                   FieldType = 297
	InitiatorPackets                          FieldType = 298
	ResponderPackets                          FieldType = 299
	ObservationDomainName                     FieldType = 300
	SelectionSequenceID                       FieldType = 301
	SelectorID                                FieldType = 302
	InformationElementID                      FieldType = 303
	SelectorAlgorithm                         FieldType = 304
	SamplingPacketInterval                    FieldType = 305
	SamplingPacketSpace                       FieldType = 306
	SamplingTimeInterval                      FieldType = 307
	SamplingTimeSpace                         FieldType = 308
	SamplingSize                              FieldType = 309
	SamplingPopulation                        FieldType = 310
	SamplingProbability                       FieldType = 311
	DataLinkFrameSize                         FieldType = 312
	IpHeaderPacketSection                     FieldType = 313
	IpPayloadPacketSection                    FieldType = 314
	DataLinkFrameSection                      FieldType = 315
	MplsLabelStackSection                     FieldType = 316
	MplsPayloadPacketSection                  FieldType = 317
	SelectorIDTotalPktsObserved               FieldType = 318
	SelectorIDTotalPktsSelected               FieldType = 319
	AbsoluteError                             FieldType = 320
	RelativeError                             FieldType = 321
	ObservationTimeSeconds                    FieldType = 322
	ObservationTimeMilliseconds               FieldType = 323
	ObservationTimeMicroseconds               FieldType = 324
	ObservationTimeNanoseconds                FieldType = 325
	DigestHashValue                           FieldType = 326
	HashIPPayloadOffset                       FieldType = 327
	HashIPPayloadSize                         FieldType = 328
	HashOutputRangeMin                        FieldType = 329
	HashOutputRangeMax                        FieldType = 330
	HashSelectedRangeMin                      FieldType = 331
	HashSelectedRangeMax                      FieldType = 332
	HashDigestOutput                          FieldType = 333
	HashInitialiserValue                      FieldType = 334
	SelectorName                              FieldType = 335
	UpperCILimit                              FieldType = 336
	LowerCILimit                              FieldType = 337
	ConfidenceLevel                           FieldType = 338
	InformationElementDataType                FieldType = 339
	InformationElementDescription             FieldType = 340
	InformationElementName                    FieldType = 341
	InformationElementRangeBegin              FieldType = 342
	InformationElementRangeEnd                FieldType = 343
	InformationElementSemantics               FieldType = 344
	InformationElementUnits                   FieldType = 345
	PrivateEnterpriseNumber                   FieldType = 346
	VirtualStationInterfaceID                 FieldType = 347
	VirtualStationInterfaceName               FieldType = 348
	VirtualStationUUID                        FieldType = 349
	VirtualStationName                        FieldType = 350
	Layer2SegmentID                           FieldType = 351
	Layer2OctetDeltaCount                     FieldType = 352
	Layer2OctetTotalCount                     FieldType = 353
	IngressUnicastPacketTotalCount            FieldType = 354
	IngressMulticastPacketTotalCount          FieldType = 355
	IngressBroadcastPacketTotalCount          FieldType = 356
	EgressUnicastPacketTotalCount             FieldType = 357
	EgressBroadcastPacketTotalCount           FieldType = 358
	MonitoringIntervalStartMilliSeconds       FieldType = 359
	MonitoringIntervalEndMilliSeconds         FieldType = 360
	PortRangeStart                            FieldType = 361
	PortRangeEnd                              FieldType = 362
	PortRangeStepSize                         FieldType = 363
	PortRangeNumPorts                         FieldType = 364
	StaMacAddress                             FieldType = 365
	StaIPv4Address                            FieldType = 366
	WtpMacAddress                             FieldType = 367
	IngressInterfaceType                      FieldType = 368
	EgressInterfaceType                       FieldType = 369
	RtpSequenceNumber                         FieldType = 370
	UserName                                  FieldType = 371
	ApplicationCategoryName                   FieldType = 372
	ApplicationSubCategoryName                FieldType = 373
	ApplicationGroupName                      FieldType = 374
	OriginalFlowsPresent                      FieldType = 375
	OriginalFlowsInitiated                    FieldType = 376
	OriginalFlowsCompleted                    FieldType = 377
	DistinctCountOfSourceIPAddress            FieldType = 378
	DistinctCountOfDestinationIPAddress       FieldType = 379
	DistinctCountOfSourceIPv4Address          FieldType = 380
	DistinctCountOfDestinationIPv4Address     FieldType = 381
	DistinctCountOfSourceIPv6Address          FieldType = 382
	DistinctCountOfDestinationIPv6Address     FieldType = 383
	ValueDistributionMethod                   FieldType = 384
	Rfc3550JitterMilliseconds                 FieldType = 385
	Rfc3550JitterMicroseconds                 FieldType = 386
	Rfc3550JitterNanoseconds                  FieldType = 387
	Dot1qDEI                                  FieldType = 388
	Dot1qCustomerDEI                          FieldType = 389
	FlowSelectorAlgorithm                     FieldType = 390
	FlowSelectedOctetDeltaCount               FieldType = 391
	FlowSelectedPacketDeltaCount              FieldType = 392
	FlowSelectedFlowDeltaCount                FieldType = 393
	SelectorIDTotalFlowsObserved              FieldType = 394
	SelectorIDTotalFlowsSelected              FieldType = 395
	SamplingFlowInterval                      FieldType = 396
	SamplingFlowSpacing                       FieldType = 397
	FlowSamplingTimeInterval                  FieldType = 398
	FlowSamplingTimeSpacing                   FieldType = 399
	HashFlowDomain                            FieldType = 400
	TransportOctetDeltaCount                  FieldType = 401
	TransportPacketDeltaCount                 FieldType = 402
	OriginalExporterIPv4Address               FieldType = 403
	OriginalExporterIPv6Address               FieldType = 404
	OriginalObservationDomainID               FieldType = 405
	IntermediateProcessID                     FieldType = 406
	IgnoredDataRecordTotalCount               FieldType = 407
	DataLinkFrameType                         FieldType = 408
	SectionOffset                             FieldType = 409
	SectionExportedOctets                     FieldType = 410
	Dot1qServiceInstanceTag                   FieldType = 411
	Dot1qServiceInstanceID                    FieldType = 412
	Dot1qServiceInstancePriority              FieldType = 413
	Dot1qCustomerSourceMacAddress             FieldType = 414
	Dot1qCustomerDestinationMacAddress        FieldType = 415
	PostLayer2OctetDeltaCount                 FieldType = 417
	PostMCastLayer2OctetDeltaCount            FieldType = 418
	PostLayer2OctetTotalCount                 FieldType = 420
	PostMCastLayer2OctetTotalCount            FieldType = 421
	MinimumLayer2TotalLength                  FieldType = 422
	MaximumLayer2TotalLength                  FieldType = 423
	DroppedLayer2OctetDeltaCount              FieldType = 424
	DroppedLayer2OctetTotalCount              FieldType = 425
	IgnoredLayer2OctetTotalCount              FieldType = 426
	NotSentLayer2OctetTotalCount              FieldType = 427
	Layer2OctetDeltaSumOfSquares              FieldType = 428
	Layer2OctetTotalSumOfSquares              FieldType = 429
	Layer2FrameDeltaCount                     FieldType = 430
	Layer2FrameTotalCount                     FieldType = 431
	PseudoWireDestinationIPv4Address          FieldType = 432
	IgnoredLayer2FrameTotalCount              FieldType = 433
	MibObjectValueInteger                     FieldType = 434
	MibObjectValueOctetString                 FieldType = 435
	MibObjectValueOID                         FieldType = 436
	MibObjectValueBits                        FieldType = 437
	MibObjectValueIPAddress                   FieldType = 438
	MibObjectValueCounter                     FieldType = 439
	MibObjectValueGauge                       FieldType = 440
	MibObjectValueTimeTicks                   FieldType = 441
	MibObjectValueUnsigned                    FieldType = 442
	MibObjectValueTable                       FieldType = 443
	MibObjectValueRow                         FieldType = 444
	MibObjectIdentifier                       FieldType = 445
	MibSubIdentifier                          FieldType = 446
	MibIndexIndicator                         FieldType = 447
	MibCaptureTimeSemantics                   FieldType = 448
	MibContextEngineID                        FieldType = 449
	MibContextName                            FieldType = 450
	MibObjectName                             FieldType = 451
	MibObjectDescription                      FieldType = 452
	MibObjectSyntax                           FieldType = 453
	MibModuleName                             FieldType = 454
	MobileIMSI                                FieldType = 455
	MobileMSISDN                              FieldType = 456
	HttpStatusCode                            FieldType = 457
	SourceTransportPortsLimit                 FieldType = 458
	HttpRequestMethod                         FieldType = 459
	HttpRequestHost                           FieldType = 460
	HttpRequestTarget                         FieldType = 461
	HttpMessageVersion                        FieldType = 462
	NatInstanceID                             FieldType = 463
	InternalAddressRealm                      FieldType = 464
	ExternalAddressRealm                      FieldType = 465
	NatQuotaExceededEvent                     FieldType = 466
	NatThresholdEvent                         FieldType = 467
	HttpUserAgent                             FieldType = 468
	HttpContentType                           FieldType = 469
	HttpReasonPhrase                          FieldType = 470
	MaxSessionEntries                         FieldType = 471
	MaxBIBEntries                             FieldType = 472
	MaxEntriesPerUser                         FieldType = 473
	MaxSubscribers                            FieldType = 474
	MaxFragmentsPendingReassembly             FieldType = 475
	AddressPoolHighThreshold                  FieldType = 476
	AddressPoolLowThreshold                   FieldType = 477
	AddressPortMappingHighThreshold           FieldType = 478
	AddressPortMappingLowThreshold            FieldType = 479
	AddressPortMappingPerUserHighThreshold    FieldType = 480
	GlobalAddressMappingHighThreshold         FieldType = 481
	VpnIdentifier                             FieldType = 482
	BgpCommunity                              FieldType = 483
	BgpSourceCommunityList                    FieldType = 484
	BgpDestinationCommunityList               FieldType = 485
	BgpExtendedCommunity                      FieldType = 486
	BgpSourceExtendedCommunityList            FieldType = 487
	BgpDestinationExtendedCommunityList       FieldType = 488
	BgpLargeCommunity                         FieldType = 489
	BgpSourceLargeCommunityList               FieldType = 490
	BgpDestinationLargeCommunityList          FieldType = 491
)

// fieldNames maps every known FieldType to its IANA registry name.
var fieldNames = map[FieldType]string{
	Reserved:                                   "reserved",
	OctetDeltaCount:                            "octetDeltaCount",
	PacketDeltaCount:                           "packetDeltaCount",
	DeltaFlowCount:                             "deltaFlowCount",
	ProtocolIdentifier:                         "protocolIdentifier",
	IPClassOfService:                           "ipClassOfService",
	TcpControlBits:                             "tcpControlBits",
	SourceTransportPort:                        "sourceTransportPort",
	SourceIPv4Address:                          "sourceIPv4Address",
	SourceIPv4PrefixLength:                     "sourceIPv4PrefixLength",
	IngressInterface:                           "ingressInterface",
	DestinationTransportPort:                   "destinationTransportPort",
	DestinationIPv4Address:                     "destinationIPv4Address",
	DestinationIPv4PrefixLength:                "destinationIPv4PrefixLength",
	EgressInterface:                            "egressInterface",
	IpNextHopIPv4Address:                       "ipNextHopIPv4Address",
	BgpSourceAsNumber:                          "bgpSourceAsNumber",
	BgpDestinationAsNumber:                     "bgpDestinationAsNumber",
	BgpNextHopIPv4Address:                      "bgpNextHopIPv4Address",
	PostMCastPacketDeltaCount:                  "postMCastPacketDeltaCount",
	PostMCastOctetDeltaCount:                   "postMCastOctetDeltaCount",
	FlowEndSysUpTime:                           "flowEndSysUpTime",
	FlowStartSysUpTime:                         "flowStartSysUpTime",
	PostOctetDeltaCount:                        "postOctetDeltaCount",
	PostPacketDeltaCount:                       "postPacketDeltaCount",
	MinimumIpTotalLength:                       "minimumIpTotalLength",
	MaximumIpTotalLength:                       "maximumIpTotalLength",
	SourceIPv6Address:                          "sourceIPv6Address",
	DestinationIPv6Address:                     "destinationIPv6Address",
	SourceIPv6PrefixLength:                     "sourceIPv6PrefixLength",
	DestinationIPv6PrefixLength:                "destinationIPv6PrefixLength",
	FlowLabelIPv6:                              "flowLabelIPv6",
	IcmpTypeCodeIPv4:                           "icmpTypeCodeIPv4",
	IgmpType:                                   "igmpType",
	SamplingInterval:                           "samplingInterval",
	SamplingAlgorithm:                          "samplingAlgorithm",
	FlowActiveTimeout:                          "flowActiveTimeout",
	FlowIdleTimeout:                            "flowIdleTimeout",
	EngineType:                                 "engineType",
	EngineID:                                   "engineId",
	ExportedOctetTotalCount:                    "exportedOctetTotalCount",
	ExportedMessageTotalCount:                  "exportedMessageTotalCount",
	ExportedFlowRecordTotalCount:               "exportedFlowRecordTotalCount",
	Ipv4RouterSc:                               "ipv4RouterSc",
	SourceIPv4Prefix:                           "sourceIPv4Prefix",
	DestinationIPv4Prefix:                      "destinationIPv4Prefix",
	MplsTopLabelType:                           "mplsTopLabelType",
	MplsTopLabelIPv4Address:                    "mplsTopLabelIPv4Address",
	SamplerID:                                  "samplerId",
	SamplerMode:                                "samplerMode",
	SamplerRandomInterval:                      "samplerRandomInterval",
	ClassID:                                    "classId",
	MinimumTTL:                                 "minimumTTL",
	MaximumTTL:                                 "maximumTTL",
	FragmentIdentification:                     "fragmentIdentification",
	PostIpClassOfService:                       "postIpClassOfService",
	SourceMacAddress:                           "sourceMacAddress",
	PostDestinationMacAddress:                  "postDestinationMacAddress",
	VlanID:                                     "vlanId",
	PostVlanID:                                 "postVlanId",
	IPVersion:                                  "ipVersion",
	FlowDirection:                              "flowDirection",
	IpNextHopIPv6Address:                       "ipNextHopIPv6Address",
	BgpNextHopIPv6Address:                      "bgpNextHopIPv6Address",
	Ipv6ExtensionHeaders:                       "ipv6ExtensionHeaders",
	MplsTopLabelStackSection:                   "mplsTopLabelStackSection",
	MplsLabelStackSection2:                     "mplsLabelStackSection2",
	MplsLabelStackSection3:                     "mplsLabelStackSection3",
	MplsLabelStackSection4:                     "mplsLabelStackSection4",
	MplsLabelStackSection5:                     "mplsLabelStackSection5",
	MplsLabelStackSection6:                     "mplsLabelStackSection6",
	MplsLabelStackSection7:                     "mplsLabelStackSection7",
	MplsLabelStackSection8:                     "mplsLabelStackSection8",
	MplsLabelStackSection9:                     "mplsLabelStackSection9",
	MplsLabelStackSection10:                    "mplsLabelStackSection10",
	DestinationMacAddress:                      "destinationMacAddress",
	PostSourceMacAddress:                       "postSourceMacAddress",
	InterfaceName:                              "interfaceName",
	InterfaceDescription:                       "interfaceDescription",
	SamplerName:                                "samplerName",
	OctetTotalCount:                            "octetTotalCount",
	PacketTotalCount:                           "packetTotalCount",
	FlagsAndSamplerID:                          "flagsAndSamplerId",
	FragmentOffset:                             "fragmentOffset",
	ForwardingStatus:                           "forwardingStatus",
	MplsVpnRouteDistinguisher:                  "mplsVpnRouteDistinguisher",
	MplsTopLabelPrefixLength:                   "mplsTopLabelPrefixLength",
	SrcTrafficIndex:                            "srcTrafficIndex",
	DstTrafficIndex:                            "dstTrafficIndex",
	ApplicationDescription:                     "applicationDescription",
	ApplicationID:                              "applicationId",
	ApplicationName:                            "applicationName",
	PostIpDiffServCodePoint:                    "postIpDiffServCodePoint",
	MulticastReplicationFactor:                 "multicastReplicationFactor",
	ClassName:                                  "className",
	ClassificationEngineID:                     "classificationEngineId",
	Layer2PacketSectionOffset:                  "layer2PacketSectionOffset",
	Layer2PacketSectionSize:                    "layer2PacketSectionSize",
	Layer2PacketSectionData:                    "layer2PacketSectionData",
	BgpNextAdjacentAsNumber:                    "bgpNextAdjacentAsNumber",
	BgpPrevAdjacentAsNumber:                    "bgpPrevAdjacentAsNumber",
	ExporterIPv4Address:                        "exporterIPv4Address",
	ExporterIPv6Address:                        "exporterIPv6Address",
	DroppedOctetDeltaCount:                     "droppedOctetDeltaCount",
	DroppedPacketDeltaCount:                    "droppedPacketDeltaCount",
	DroppedOctetTotalCount:                     "droppedOctetTotalCount",
	DroppedPacketTotalCount:                    "droppedPacketTotalCount",
	FlowEndReason:                              "flowEndReason",
	CommonPropertiesID:                         "commonPropertiesId",
	ObservationPointID:                         "observationPointId",
	IcmpTypeCodeIPv6:                           "icmpTypeCodeIPv6",
	MplsTopLabelIPv6Address:                    "mplsTopLabelIPv6Address",
	LineCardID:                                 "lineCardId",
	PortID:                                     "portId",
	MeteringProcessID:                          "meteringProcessId",
	ExportingProcessID:                         "exportingProcessId",
	TemplateID:                                 "templateId",
	WlanChannelID:                              "wlanChannelId",
	WlanSSID:                                   "wlanSSID",
	FlowID:                                     "flowId",
	ObservationDomainID:                        "observationDomainId",
	FlowStartSeconds:                           "flowStartSeconds",
	FlowEndSeconds:                             "flowEndSeconds",
	FlowStartMilliseconds:                      "flowStartMilliseconds",
	FlowEndMilliseconds:                        "flowEndMilliseconds",
	FlowStartMicroseconds:                      "flowStartMicroseconds",
	FlowEndMicroseconds:                        "flowEndMicroseconds",
	FlowStartNanoseconds:                       "flowStartNanoseconds",
	FlowEndNanoseconds:                         "flowEndNanoseconds",
	FlowStartDeltaMicroseconds:                 "flowStartDeltaMicroseconds",
	FlowEndDeltaMicroseconds:                   "flowEndDeltaMicroseconds",
	SystemInitTimeMilliseconds:                 "systemInitTimeMilliseconds",
	FlowDurationMilliseconds:                   "flowDurationMilliseconds",
	FlowDurationMicroseconds:                   "flowDurationMicroseconds",
	ObservedFlowTotalCount:                     "observedFlowTotalCount",
	IgnoredPacketTotalCount:                    "ignoredPacketTotalCount",
	IgnoredOctetTotalCount:                     "ignoredOctetTotalCount",
	NotSentFlowTotalCount:                      "notSentFlowTotalCount",
	NotSentPacketTotalCount:                    "notSentPacketTotalCount",
	NotSentOctetTotalCount:                     "notSentOctetTotalCount",
	DestinationIPv6Prefix:                      "destinationIPv6Prefix",
	SourceIPv6Prefix:                           "sourceIPv6Prefix",
	PostOctetTotalCount:                        "postOctetTotalCount",
	PostPacketTotalCount:                       "postPacketTotalCount",
	FlowKeyIndicator:                           "flowKeyIndicator",
	PostMCastPacketTotalCount:                  "postMCastPacketTotalCount",
	PostMCastOctetTotalCount:                   "postMCastOctetTotalCount",
	IcmpTypeIPv4:                               "icmpTypeIPv4",
	IcmpCodeIPv4:                               "icmpCodeIPv4",
	IcmpTypeIPv6:                               "icmpTypeIPv6",
	IcmpCodeIPv6:                               "icmpCodeIPv6",
	UdpSourcePort:                              "udpSourcePort",
	UdpDestinationPort:                         "udpDestinationPort",
	TcpSourcePort:                              "tcpSourcePort",
	TcpDestinationPort:                         "tcpDestinationPort",
	TcpSequenceNumber:                          "tcpSequenceNumber",
	TcpAcknowledgementNumber:                   "tcpAcknowledgementNumber",
	TcpWindowSize:                              "tcpWindowSize",
	TcpUrgentPointer:                           "tcpUrgentPointer",
	TcpHeaderLength:                            "tcpHeaderLength",
	IpHeaderLength:                             "ipHeaderLength",
	TotalLengthIPv4:                            "totalLengthIPv4",
	PayloadLengthIPv6:                          "payloadLengthIPv6",
	IpTTL:                                      "ipTTL",
	NextHeaderIPv6:                             "nextHeaderIPv6",
	MplsPayloadLength:                          "mplsPayloadLength",
	IpDiffServCodePoint:                        "ipDiffServCodePoint",
	IpPrecedence:                               "ipPrecedence",
	FragmentFlags:                              "fragmentFlags",
	OctetDeltaSumOfSquares:                     "octetDeltaSumOfSquares",
	OctetTotalSumOfSquares:                     "octetTotalSumOfSquares",
	MplsTopLabelTTL:                            "mplsTopLabelTTL",
	MplsLabelStackLength:                       "mplsLabelStackLength",
	MplsLabelStackDepth:                        "mplsLabelStackDepth",
	MplsTopLabelExp:                            "mplsTopLabelExp",
	IPPayloadLength:                            "ipPayloadLength",
	UdpMessageLength:                           "udpMessageLength",
	IsMulticast:                                "isMulticast",
	IPv4IHL:                                    "ipv4IHL",
	IPv4Options:                                "ipv4Options",
	TcpOptions:                                 "tcpOptions",
	PaddingOctets:                              "paddingOctets",
	CollectorIPv4Address:                       "collectorIPv4Address",
	CollectorIPv6Address:                       "collectorIPv6Address",
	ExportInterface:                            "exportInterface",
	ExportProtocolVersion:                      "exportProtocolVersion",
	ExportTransportProtocol:                    "exportTransportProtocol",
	CollectorTransportPort:                     "collectorTransportPort",
	ExporterTransportPort:                      "exporterTransportPort",
	TcpSynTotalCount:                           "tcpSynTotalCount",
	TcpFinTotalCount:                           "tcpFinTotalCount",
	TcpRstTotalCount:                           "tcpRstTotalCount",
	TcpPshTotalCount:                           "tcpPshTotalCount",
	TcpAckTotalCount:                           "tcpAckTotalCount",
	TcpUrgTotalCount:                           "tcpUrgTotalCount",
	IpTotalLength:                              "ipTotalLength",
	PostNATSourceIPv4Address:                   "postNATSourceIPv4Address",
	PostNATDestinationIPv4Address:              "postNATDestinationIPv4Address",
	PostNAPTSourceTransportPort:                "postNAPTSourceTransportPort",
	PostNAPTDestinationTransportPort:           "postNAPTDestinationTransportPort",
	NatOriginatingAddressRealm:                 "natOriginatingAddressRealm",
	NatEvent:                                   "natEvent",
	InitiatorOctets:                            "initiatorOctets",
	ResponderOctets:                            "responderOctets",
	FirewallEvent:                              "firewallEvent",
	IngressVRFID:                               "ingressVRFID",
	EgressVRFID:                                "egressVRFID",
	VRFname:                                    "VRFname",
	PostMplsTopLabelExp:                        "postMplsTopLabelExp",
	TcpWindowScale:                             "tcpWindowScale",
	BiflowDirection:                            "biflowDirection",
	EthernetHeaderLength:                       "ethernetHeaderLength",
	EthernetPayloadLength:                      "ethernetPayloadLength",
	EthernetTotalLength:                        "ethernetTotalLength",
	Dot1qVlanID:                                "dot1qVlanId",
	Dot1qPriority:                              "dot1qPriority",
	Dot1qCustomerVlanID:                        "dot1qCustomerVlanId",
	Dot1qCustomerPriority:                      "dot1qCustomerPriority",
	MetroEvcID:                                 "metroEvcId",
	MetroEvcType:                               "metroEvcType",
	PseudoWireID:                               "pseudoWireId",
	PseudoWireType:                             "pseudoWireType",
	PseudoWireControlWord:                      "pseudoWireControlWord",
	IngressPhysicalInterface:                   "ingressPhysicalInterface",
	EgressPhysicalInterface:                    "egressPhysicalInterface",
	PostDot1qVlanID:                            "postDot1qVlanId",
	PostDot1qCustomerVlanID:                    "postDot1qCustomerVlanId",
	EthernetType:                               "ethernetType",
	PostIpPrecedence:                           "postIpPrecedence",
	CollectionTimeMilliseconds:                 "collectionTimeMilliseconds",
	ExportSctpStreamID:                         "exportSctpStreamId",
	MaxExportSeconds:                           "maxExportSeconds",
	MaxFlowEndSeconds:                          "maxFlowEndSeconds",
	MessageMD5Checksum:                         "messageMD5Checksum",
	MessageScope:                               "messageScope",
	MinExportSeconds:                           "minExportSeconds",
	MinFlowStartSeconds:                        "minFlowStartSeconds",
	OpaqueOctets:                               "opaqueOctets",
	SessionScope:                               "sessionScope",
	MaxFlowEndMicroseconds:                     "maxFlowEndMicroseconds",
	MaxFlowEndMilliseconds:                     "maxFlowEndMilliseconds",
	MaxFlowEndNanoseconds:                      "maxFlowEndNanoseconds",
	MinFlowStartMicroseconds:                   "minFlowStartMicroseconds",
	MinFlowStartMilliseconds:                   "minFlowStartMilliseconds",
	MinFlowStartNanoseconds:                    "minFlowStartNanoseconds",
	CollectorCertificate:                       "collectorCertificate",
	ExporterCertificate:                        "exporterCertificate",
	DataRecordsReliability:                     "dataRecordsReliability",
	ObservationPointType:                       "observationPointType",
	NewConnectionDeltaCount:                    "newConnectionDeltaCount",
	ConnectionSumDurationSeconds:               "connectionSumDurationSeconds",
	ConnectionTransactionID:                    "connectionTransactionId",
	PostNATSourceIPv6Address:                   "postNATSourceIPv6Address",
	PostNATDestinationIPv6Address:              "postNATDestinationIPv6Address",
	NatPoolID:                                  "natPoolId",
	NatPoolName:                                "natPoolName",
	AnonymizationFlags:                         "anonymizationFlags",
	AnonymizationTechnique:                     "anonymizationTechnique",
	InformationElementIndex:                    "informationElementIndex",
	P2PTechnology:                              "p2pTechnology",
	TunnelTechnology:                           "tunnelTechnology",
	EncryptedTechnology:                        "encryptedTechnology",
	BasicList:                                  "basicList",
	SubTemplateList:                            "subTemplateList",
	SubTemplateMultiList:                       "subTemplateMultiList",
	BgpValidityState:                           "bgpValidityState",
	IPSecSPI:                                   "ipSecSPI",
	GreKey:                                     "greKey",
	NatType:                                    "natType",
	InitiatorPackets:                           "initiatorPackets",
	ResponderPackets:                           "responderPackets",
	ObservationDomainName:                      "observationDomainName",
	SelectionSequenceID:                        "selectionSequenceId",
	SelectorID:                                 "selectorId",
	InformationElementID:                       "informationElementId",
	SelectorAlgorithm:                          "selectorAlgorithm",
	SamplingPacketInterval:                     "samplingPacketInterval",
	SamplingPacketSpace:                        "samplingPacketSpace",
	SamplingTimeInterval:                       "samplingTimeInterval",
	SamplingTimeSpace:                          "samplingTimeSpace",
	SamplingSize:                               "samplingSize",
	SamplingPopulation:                         "samplingPopulation",
	SamplingProbability:                        "samplingProbability",
	DataLinkFrameSize:                          "dataLinkFrameSize",
	IpHeaderPacketSection:                      "ipHeaderPacketSection",
	IpPayloadPacketSection:                     "ipPayloadPacketSection",
	DataLinkFrameSection:                       "dataLinkFrameSection",
	MplsLabelStackSection:                      "mplsLabelStackSection",
	MplsPayloadPacketSection:                   "mplsPayloadPacketSection",
	SelectorIDTotalPktsObserved:                "selectorIdTotalPktsObserved",
	SelectorIDTotalPktsSelected:                "selectorIdTotalPktsSelected",
	AbsoluteError:                              "absoluteError",
	RelativeError:                              "relativeError",
	ObservationTimeSeconds:                     "observationTimeSeconds",
	ObservationTimeMilliseconds:                "observationTimeMilliseconds",
	ObservationTimeMicroseconds:                "observationTimeMicroseconds",
	ObservationTimeNanoseconds:                 "observationTimeNanoseconds",
	DigestHashValue:                            "digestHashValue",
	HashIPPayloadOffset:                        "hashIPPayloadOffset",
	HashIPPayloadSize:                          "hashIPPayloadSize",
	HashOutputRangeMin:                         "hashOutputRangeMin",
	HashOutputRangeMax:                         "hashOutputRangeMax",
	HashSelectedRangeMin:                       "hashSelectedRangeMin",
	HashSelectedRangeMax:                       "hashSelectedRangeMax",
	HashDigestOutput:                           "hashDigestOutput",
	HashInitialiserValue:                       "hashInitialiserValue",
	SelectorName:                               "selectorName",
	UpperCILimit:                               "upperCILimit",
	LowerCILimit:                               "lowerCILimit",
	ConfidenceLevel:                            "confidenceLevel",
	InformationElementDataType:                 "informationElementDataType",
	InformationElementDescription:              "informationElementDescription",
	InformationElementName:                     "informationElementName",
	InformationElementRangeBegin:               "informationElementRangeBegin",
	InformationElementRangeEnd:                 "informationElementRangeEnd",
	InformationElementSemantics:                "informationElementSemantics",
	InformationElementUnits:                    "informationElementUnits",
	PrivateEnterpriseNumber:                    "privateEnterpriseNumber",
	VirtualStationInterfaceID:                  "virtualStationInterfaceId",
	VirtualStationInterfaceName:                "virtualStationInterfaceName",
	VirtualStationUUID:                         "virtualStationUUID",
	VirtualStationName:                         "virtualStationName",
	Layer2SegmentID:                            "layer2SegmentId",
	Layer2OctetDeltaCount:                      "layer2OctetDeltaCount",
	Layer2OctetTotalCount:                      "layer2OctetTotalCount",
	IngressUnicastPacketTotalCount:             "ingressUnicastPacketTotalCount",
	IngressMulticastPacketTotalCount:           "ingressMulticastPacketTotalCount",
	IngressBroadcastPacketTotalCount:           "ingressBroadcastPacketTotalCount",
	EgressUnicastPacketTotalCount:              "egressUnicastPacketTotalCount",
	EgressBroadcastPacketTotalCount:            "egressBroadcastPacketTotalCount",
	MonitoringIntervalStartMilliSeconds:        "monitoringIntervalStartMilliSeconds",
	MonitoringIntervalEndMilliSeconds:          "monitoringIntervalEndMilliSeconds",
	PortRangeStart:                             "portRangeStart",
	PortRangeEnd:                               "portRangeEnd",
	PortRangeStepSize:                          "portRangeStepSize",
	PortRangeNumPorts:                          "portRangeNumPorts",
	StaMacAddress:                              "staMacAddress",
	StaIPv4Address:                             "staIPv4Address",
	WtpMacAddress:                              "wtpMacAddress",
	IngressInterfaceType:                       "ingressInterfaceType",
	EgressInterfaceType:                        "egressInterfaceType",
	RtpSequenceNumber:                          "rtpSequenceNumber",
	UserName:                                   "userName",
	ApplicationCategoryName:                    "applicationCategoryName",
	ApplicationSubCategoryName:                 "applicationSubCategoryName",
	ApplicationGroupName:                       "applicationGroupName",
	OriginalFlowsPresent:                       "originalFlowsPresent",
	OriginalFlowsInitiated:                     "originalFlowsInitiated",
	OriginalFlowsCompleted:                     "originalFlowsCompleted",
	DistinctCountOfSourceIPAddress:             "distinctCountOfSourceIPAddress",
	DistinctCountOfDestinationIPAddress:        "distinctCountOfDestinationIPAddress",
	DistinctCountOfSourceIPv4Address:           "distinctCountOfSourceIPv4Address",
	DistinctCountOfDestinationIPv4Address:      "distinctCountOfDestinationIPv4Address",
	DistinctCountOfSourceIPv6Address:           "distinctCountOfSourceIPv6Address",
	DistinctCountOfDestinationIPv6Address:      "distinctCountOfDestinationIPv6Address",
	ValueDistributionMethod:                    "valueDistributionMethod",
	Rfc3550JitterMilliseconds:                  "rfc3550JitterMilliseconds",
	Rfc3550JitterMicroseconds:                  "rfc3550JitterMicroseconds",
	Rfc3550JitterNanoseconds:                   "rfc3550JitterNanoseconds",
	Dot1qDEI:                                   "dot1qDEI",
	Dot1qCustomerDEI:                           "dot1qCustomerDEI",
	FlowSelectorAlgorithm:                      "flowSelectorAlgorithm",
	FlowSelectedOctetDeltaCount:                "flowSelectedOctetDeltaCount",
	FlowSelectedPacketDeltaCount:               "flowSelectedPacketDeltaCount",
	FlowSelectedFlowDeltaCount:                 "flowSelectedFlowDeltaCount",
	SelectorIDTotalFlowsObserved:               "selectorIDTotalFlowsObserved",
	SelectorIDTotalFlowsSelected:               "selectorIDTotalFlowsSelected",
	SamplingFlowInterval:                       "samplingFlowInterval",
	SamplingFlowSpacing:                        "samplingFlowSpacing",
	FlowSamplingTimeInterval:                   "flowSamplingTimeInterval",
	FlowSamplingTimeSpacing:                    "flowSamplingTimeSpacing",
	HashFlowDomain:                             "hashFlowDomain",
	TransportOctetDeltaCount:                   "transportOctetDeltaCount",
	TransportPacketDeltaCount:                  "transportPacketDeltaCount",
	OriginalExporterIPv4Address:                "originalExporterIPv4Address",
	OriginalExporterIPv6Address:                "originalExporterIPv6Address",
	OriginalObservationDomainID:                "originalObservationDomainId",
	IntermediateProcessID:                      "intermediateProcessId",
	IgnoredDataRecordTotalCount:                "ignoredDataRecordTotalCount",
	DataLinkFrameType:                          "dataLinkFrameType",
	SectionOffset:                              "sectionOffset",
	SectionExportedOctets:                      "sectionExportedOctets",
	Dot1qServiceInstanceTag:                    "dot1qServiceInstanceTag",
	Dot1qServiceInstanceID:                     "dot1qServiceInstanceId",
	Dot1qServiceInstancePriority:               "dot1qServiceInstancePriority",
	Dot1qCustomerSourceMacAddress:              "dot1qCustomerSourceMacAddress",
	Dot1qCustomerDestinationMacAddress:         "dot1qCustomerDestinationMacAddress",
	PostLayer2OctetDeltaCount:                  "postLayer2OctetDeltaCount",
	PostMCastLayer2OctetDeltaCount:             "postMCastLayer2OctetDeltaCount",
	PostLayer2OctetTotalCount:                  "postLayer2OctetTotalCount",
	PostMCastLayer2OctetTotalCount:             "postMCastLayer2OctetTotalCount",
	MinimumLayer2TotalLength:                   "minimumLayer2TotalLength",
	MaximumLayer2TotalLength:                   "maximumLayer2TotalLength",
	DroppedLayer2OctetDeltaCount:               "droppedLayer2OctetDeltaCount",
	DroppedLayer2OctetTotalCount:               "droppedLayer2OctetTotalCount",
	IgnoredLayer2OctetTotalCount:               "ignoredLayer2OctetTotalCount",
	NotSentLayer2OctetTotalCount:               "notSentLayer2OctetTotalCount",
	Layer2OctetDeltaSumOfSquares:               "layer2OctetDeltaSumOfSquares",
	Layer2OctetTotalSumOfSquares:               "layer2OctetTotalSumOfSquares",
	Layer2FrameDeltaCount:                      "layer2FrameDeltaCount",
	Layer2FrameTotalCount:                      "layer2FrameTotalCount",
	PseudoWireDestinationIPv4Address:           "pseudoWireDestinationIPv4Address",
	IgnoredLayer2FrameTotalCount:               "ignoredLayer2FrameTotalCount",
	MibObjectValueInteger:                      "mibObjectValueInteger",
	MibObjectValueOctetString:                  "mibObjectValueOctetString",
	MibObjectValueOID:                          "mibObjectValueOID",
	MibObjectValueBits:                         "mibObjectValueBits",
	MibObjectValueIPAddress:                    "mibObjectValueIPAddress",
	MibObjectValueCounter:                      "mibObjectValueCounter",
	MibObjectValueGauge:                        "mibObjectValueGauge",
	MibObjectValueTimeTicks:                    "mibObjectValueTimeTicks",
	MibObjectValueUnsigned:                     "mibObjectValueUnsigned",
	MibObjectValueTable:                        "mibObjectValueTable",
	MibObjectValueRow:                          "mibObjectValueRow",
	MibObjectIdentifier:                        "mibObjectIdentifier",
	MibSubIdentifier:                           "mibSubIdentifier",
	MibIndexIndicator:                          "mibIndexIndicator",
	MibCaptureTimeSemantics:                    "mibCaptureTimeSemantics",
	MibContextEngineID:                         "mibContextEngineID",
	MibContextName:                             "mibContextName",
	MibObjectName:                              "mibObjectName",
	MibObjectDescription:                       "mibObjectDescription",
	MibObjectSyntax:                            "mibObjectSyntax",
	MibModuleName:                              "mibModuleName",
	MobileIMSI:                                 "mobileIMSI",
	MobileMSISDN:                               "mobileMSISDN",
	HttpStatusCode:                             "httpStatusCode",
	SourceTransportPortsLimit:                  "sourceTransportPortsLimit",
	HttpRequestMethod:                          "httpRequestMethod",
	HttpRequestHost:                            "httpRequestHost",
	HttpRequestTarget:                          "httpRequestTarget",
	HttpMessageVersion:                         "httpMessageVersion",
	NatInstanceID:                              "natInstanceID",
	InternalAddressRealm:                       "internalAddressRealm",
	ExternalAddressRealm:                       "externalAddressRealm",
	NatQuotaExceededEvent:                      "natQuotaExceededEvent",
	NatThresholdEvent:                          "natThresholdEvent",
	HttpUserAgent:                              "httpUserAgent",
	HttpContentType:                            "httpContentType",
	HttpReasonPhrase:                           "httpReasonPhrase",
	MaxSessionEntries:                          "maxSessionEntries",
	MaxBIBEntries:                              "maxBIBEntries",
	MaxEntriesPerUser:                          "maxEntriesPerUser",
	MaxSubscribers:                             "maxSubscribers",
	MaxFragmentsPendingReassembly:              "maxFragmentsPendingReassembly",
	AddressPoolHighThreshold:                   "addressPoolHighThreshold",
	AddressPoolLowThreshold:                    "addressPoolLowThreshold",
	AddressPortMappingHighThreshold:            "addressPortMappingHighThreshold",
	AddressPortMappingLowThreshold:             "addressPortMappingLowThreshold",
	AddressPortMappingPerUserHighThreshold:     "addressPortMappingPerUserHighThreshold",
	GlobalAddressMappingHighThreshold:          "globalAddressMappingHighThreshold",
	VpnIdentifier:                              "vpnIdentifier",
	BgpCommunity:                               "bgpCommunity",
	BgpSourceCommunityList:                     "bgpSourceCommunityList",
	BgpDestinationCommunityList:                "bgpDestinationCommunityList",
	BgpExtendedCommunity:                       "bgpExtendedCommunity",
	BgpSourceExtendedCommunityList:             "bgpSourceExtendedCommunityList",
	BgpDestinationExtendedCommunityList:        "bgpDestinationExtendedCommunityList",
	BgpLargeCommunity:                          "bgpLargeCommunity",
	BgpSourceLargeCommunityList:                "bgpSourceLargeCommunityList",
	BgpDestinationLargeCommunityList:           "bgpDestinationLargeCommunityList",
}

// LookupField resolves a raw Information Element id from a template field.
// The second return value is false for ids outside the known registry.
func LookupField(id uint16) (FieldType, bool) {
	ft := FieldType(id)
	_, ok := fieldNames[ft]
	return ft, ok
}

// Name returns the IANA registry name of the field, or a numeric
// placeholder for ids that are not in the registry.
func (t FieldType) Name() string {
	if name, ok := fieldNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint16(t))
}

func (t FieldType) String() string {
	return t.Name()
}
