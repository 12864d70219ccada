package command

// Command opcodes per SX1261/2 datasheet section 13 (table 13-1).
const (
	// OpResetStats resets the packet reception counters
	OpResetStats = 0x00

	// OpClearIrqStatus clears flags in the IRQ register
	OpClearIrqStatus = 0x02

	// OpClearDeviceErrors clears the device error flags
	OpClearDeviceErrors = 0x07

	// OpSetDioIrqParams routes IRQ sources to the DIO pins
	OpSetDioIrqParams = 0x08

	// OpWriteRegister writes bytes starting at a register address
	OpWriteRegister = 0x0D

	// OpWriteBuffer stores payload bytes into the data buffer
	OpWriteBuffer = 0x0E

	// OpGetStats reads the packet reception counters
	OpGetStats = 0x10

	// OpGetPacketType reads the configured packet type
	OpGetPacketType = 0x11

	// OpGetIrqStatus reads the IRQ register
	OpGetIrqStatus = 0x12

	// OpGetRxBufferStatus reads the last received payload length and offset
	OpGetRxBufferStatus = 0x13

	// OpGetPacketStatus reads the signal quality of the last packet
	OpGetPacketStatus = 0x14

	// OpGetDeviceErrors reads the device error flags
	OpGetDeviceErrors = 0x17

	// OpReadRegister reads bytes starting at a register address
	OpReadRegister = 0x1D

	// OpReadBuffer reads payload bytes from the data buffer
	OpReadBuffer = 0x1E

	// OpSetStandby puts the device in standby mode
	OpSetStandby = 0x80

	// OpSetRx puts the device in receive mode
	OpSetRx = 0x82

	// OpSetTx puts the device in transmit mode
	OpSetTx = 0x83

	// OpSetSleep puts the device in sleep mode
	OpSetSleep = 0x84

	// OpSetRfFrequency sets the RF frequency in PLL steps
	OpSetRfFrequency = 0x86

	// OpSetPacketType selects the packet engine (GFSK, LoRa, LR-FHSS)
	OpSetPacketType = 0x8A

	// OpSetModulationParams configures the modulation parameters
	OpSetModulationParams = 0x8B

	// OpSetPacketParams configures the packet handling block
	OpSetPacketParams = 0x8C

	// OpSetTxParams sets output power and PA ramp time
	OpSetTxParams = 0x8E

	// OpSetBufferBaseAddress sets the TX and RX data buffer base addresses
	OpSetBufferBaseAddress = 0x8F

	// OpSetPaConfig configures the power amplifier
	OpSetPaConfig = 0x95

	// OpSetDio3AsTcxoCtrl makes DIO3 drive an external TCXO supply
	OpSetDio3AsTcxoCtrl = 0x97

	// OpSetDio2AsRfSwitchCtrl makes DIO2 drive an external RF switch
	OpSetDio2AsRfSwitchCtrl = 0x9D

	// OpSetLoraSymbNumTimeout sets the symbol count validating a reception
	OpSetLoraSymbNumTimeout = 0xA0

	// OpGetStatus reads the chip mode and command status
	OpGetStatus = 0xC0
)
