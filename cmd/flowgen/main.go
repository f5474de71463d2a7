// flowgen sends synthetic NetFlow v5 and IPFIX datagrams at a running
// collector. Useful for smoke-testing a deployment without a router.
package main

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	target   string
	count    int
	interval time.Duration
	useIPFIX bool
	sampling uint16
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flowgen",
		Short: "Send synthetic NetFlow v5 / IPFIX traffic at a collector",
		Long: `Generates flow datagrams and sends them over UDP.

In v5 mode every datagram carries a handful of random flow records. In
IPFIX mode the template is advertised first, then data records follow,
the way a real exporter behaves.

Example:
  flowgen --target 127.0.0.1:9999 --count 100 --ipfix`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&target, "target", "127.0.0.1:9999", "Collector address")
	rootCmd.Flags().IntVar(&count, "count", 10, "Number of datagrams to send")
	rootCmd.Flags().DurationVar(&interval, "interval", 100*time.Millisecond, "Delay between datagrams")
	rootCmd.Flags().BoolVar(&useIPFIX, "ipfix", false, "Send IPFIX instead of NetFlow v5")
	rootCmd.Flags().Uint16Var(&sampling, "sampling", 0, "v5 sampling interval to advertise")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	conn, err := net.Dial("udp", target)
	if err != nil {
		return fmt.Errorf("cannot reach %s: %w", target, err)
	}
	defer conn.Close()

	start := time.Now()

	if useIPFIX {
		// templates first, as an exporter would on session start
		if _, err := conn.Write(ipfixTemplateDatagram()); err != nil {
			return err
		}
		time.Sleep(interval)
	}

	for i := 0; i < count; i++ {
		var datagram []byte
		if useIPFIX {
			datagram = ipfixDataDatagram(uint32(i))
		} else {
			datagram = v5Datagram(uint32(i), sampling)
		}
		if _, err := conn.Write(datagram); err != nil {
			return err
		}
		time.Sleep(interval)
	}

	fmt.Printf("sent %d datagrams to %s in %s\n", count, target, time.Since(start).Round(time.Millisecond))
	return nil
}

// v5Datagram builds a header plus three random flow records.
func v5Datagram(sequence uint32, sampling uint16) []byte {
	const records = 3

	buf := make([]byte, 24+records*48)
	binary.BigEndian.PutUint16(buf[0:2], 5)
	binary.BigEndian.PutUint16(buf[2:4], records)
	binary.BigEndian.PutUint32(buf[4:8], uint32(time.Now().UnixMilli()%0xFFFFFFFF))
	binary.BigEndian.PutUint32(buf[8:12], uint32(time.Now().Unix()))
	binary.BigEndian.PutUint32(buf[16:20], sequence*records)
	buf[20] = 1
	binary.BigEndian.PutUint16(buf[22:24], sampling&0x3FFF)

	for i := 0; i < records; i++ {
		record := buf[24+i*48:]
		binary.BigEndian.PutUint32(record[0:4], randomIP())
		binary.BigEndian.PutUint32(record[4:8], randomIP())
		binary.BigEndian.PutUint32(record[16:20], uint32(rand.Intn(1000)+1))
		binary.BigEndian.PutUint32(record[20:24], uint32(rand.Intn(1_000_000)+40))
		binary.BigEndian.PutUint32(record[24:28], 1000)
		binary.BigEndian.PutUint32(record[28:32], 2000)
		binary.BigEndian.PutUint16(record[32:34], uint16(rand.Intn(0xFFFF)))
		binary.BigEndian.PutUint16(record[34:36], 443)
		record[37] = 0x18 // PSH+ACK
		record[38] = 6
	}

	return buf
}

// ipfixTemplate describes the data records ipfixDataDatagram emits:
// srcIPv4, dstIPv4, protocol, srcPort, dstPort, octets, packets.
var ipfixTemplate = []struct {
	id     uint16
	length uint16
}{
	{8, 4},  // sourceIPv4Address
	{12, 4}, // destinationIPv4Address
	{4, 1},  // protocolIdentifier
	{7, 2},  // sourceTransportPort
	{11, 2}, // destinationTransportPort
	{1, 8},  // octetDeltaCount
	{2, 8},  // packetDeltaCount
}

const (
	flowgenTemplateID = 256
	flowgenDomainID   = 1
)

func ipfixHeader(length int, sequence uint32) []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint16(buf[0:2], 10)
	binary.BigEndian.PutUint16(buf[2:4], uint16(length))
	binary.BigEndian.PutUint32(buf[4:8], uint32(time.Now().Unix()))
	binary.BigEndian.PutUint32(buf[8:12], sequence)
	binary.BigEndian.PutUint32(buf[12:16], flowgenDomainID)
	return buf
}

func ipfixTemplateDatagram() []byte {
	setLen := 4 + 4 + len(ipfixTemplate)*4
	total := 16 + setLen

	buf := ipfixHeader(total, 0)

	set := make([]byte, setLen)
	binary.BigEndian.PutUint16(set[0:2], 2)
	binary.BigEndian.PutUint16(set[2:4], uint16(setLen))
	binary.BigEndian.PutUint16(set[4:6], flowgenTemplateID)
	binary.BigEndian.PutUint16(set[6:8], uint16(len(ipfixTemplate)))
	for i, field := range ipfixTemplate {
		binary.BigEndian.PutUint16(set[8+i*4:], field.id)
		binary.BigEndian.PutUint16(set[10+i*4:], field.length)
	}

	return append(buf, set...)
}

func ipfixDataDatagram(sequence uint32) []byte {
	const recordLen = 4 + 4 + 1 + 2 + 2 + 8 + 8

	setLen := 4 + recordLen
	total := 16 + setLen

	buf := ipfixHeader(total, sequence)

	set := make([]byte, setLen)
	binary.BigEndian.PutUint16(set[0:2], flowgenTemplateID)
	binary.BigEndian.PutUint16(set[2:4], uint16(setLen))

	record := set[4:]
	binary.BigEndian.PutUint32(record[0:4], randomIP())
	binary.BigEndian.PutUint32(record[4:8], randomIP())
	record[8] = 17
	binary.BigEndian.PutUint16(record[9:11], uint16(rand.Intn(0xFFFF)))
	binary.BigEndian.PutUint16(record[11:13], 53)
	binary.BigEndian.PutUint64(record[13:21], uint64(rand.Intn(1_000_000)+40))
	binary.BigEndian.PutUint64(record[21:29], uint64(rand.Intn(1000)+1))

	return append(buf, set...)
}

// randomIP picks an address inside 10.0.0.0/8.
func randomIP() uint32 {
	return 10<<24 | uint32(rand.Intn(1<<24))
}
