package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dnshell/internal/config"
	"dnshell/internal/dnscheck"
	"dnshell/internal/launcher"
	"dnshell/internal/netinfo"
	"dnshell/internal/platform"
	"dnshell/internal/providers"
	"dnshell/internal/script"
	"dnshell/internal/system"
	"dnshell/internal/validate"
	"dnshell/internal/wizard"
)

func runCLI(p platform.Platform) {
	rootCmd := &cobra.Command{
		Use:   "dnshell",
		Short: "Set the host DNS resolver and open a terminal with the change applied",
		Long: `dnshell collects a DNS server address (and a network interface name on
Windows), writes a small shell script that applies the setting, and opens
that script in a new terminal window so the result can be inspected and
reverted.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()

			var adapters []netinfo.Adapter
			if p == platform.Windows {
				adapters, _ = netinfo.Adapters()
			}

			res, err := wizard.Run(p, cfg, adapters)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !res.Confirmed {
				fmt.Println("Cancelled.")
				return
			}

			applyAndLaunch(p, cfg, res.DNS, res.Interface)
		},
	}

	// Non-interactive apply, same effect as the wizard with confirmation
	// already given.
	var applyDNS, applyIface string
	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Write the DNS script and open the terminal without prompting",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			dns, iface := resolveValues(p, cfg, applyDNS, applyIface)
			applyAndLaunch(p, cfg, dns, iface)
		},
	}
	applyCmd.Flags().StringVar(&applyDNS, "dns", "", "DNS server address (default "+config.DefaultDNS+")")
	applyCmd.Flags().StringVar(&applyIface, "interface", "", "network interface name (Windows only)")

	// Render the script without launching anything.
	var scriptDNS, scriptIface string
	var scriptWrite bool
	scriptCmd := &cobra.Command{
		Use:   "script",
		Short: "Print the generated script, or write it with --write",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			dns, iface := resolveValues(p, cfg, scriptDNS, scriptIface)
			opts := script.Options{DNS: dns, Interface: iface}

			if scriptWrite {
				cwd, err := os.Getwd()
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				path, err := script.Write(cwd, p, opts)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				fmt.Printf("Script written to %s\n", path)
				return
			}

			text, err := script.Render(p, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(text)
		},
	}
	scriptCmd.Flags().StringVar(&scriptDNS, "dns", "", "DNS server address (default "+config.DefaultDNS+")")
	scriptCmd.Flags().StringVar(&scriptIface, "interface", "", "network interface name (Windows only)")
	scriptCmd.Flags().BoolVar(&scriptWrite, "write", false, "write the script to the working directory")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current DNS resolver configuration",
		Run: func(cmd *cobra.Command, args []string) {
			servers, err := system.CurrentDNS()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading DNS configuration: %v\n", err)
				os.Exit(1)
			}
			if len(servers) == 0 {
				fmt.Println("No nameservers configured.")
				return
			}
			fmt.Println("Current nameservers:")
			for _, s := range servers {
				fmt.Printf("  %s\n", s)
			}
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the DNS configuration recorded before the last change",
		Run: func(cmd *cobra.Command, args []string) {
			if err := system.Reset(); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to reset DNS: %v\n", err)
				if p == platform.Linux && os.Geteuid() != 0 {
					fmt.Fprintln(os.Stderr, "Writing /etc/resolv.conf requires root. Try: sudo dnshell reset")
				}
				os.Exit(1)
			}
			fmt.Println("DNS settings restored.")
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check <address>",
		Short: "Ping a DNS server and send it a test query",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			server := args[0]
			if err := validate.DNSAddress(server); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			res, err := dnscheck.Probe(ctx, server)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			if res.PingOK {
				fmt.Printf("Ping:   ok (avg %s, %.0f%% loss)\n", res.PingRTT, res.PingLoss)
			} else {
				fmt.Println("Ping:   no reply (many resolvers drop ICMP)")
			}
			if res.QueryOK {
				fmt.Printf("Query:  ok (%s)\n", res.QueryRTT)
				for _, a := range res.Answers {
					fmt.Printf("  example.com -> %s\n", a)
				}
			} else {
				fmt.Printf("Query:  failed (%s)\n", res.QueryErr)
				os.Exit(1)
			}
		},
	}

	interfacesCmd := &cobra.Command{
		Use:   "interfaces",
		Short: "List network adapters (default-gateway adapter marked with *)",
		Run: func(cmd *cobra.Command, args []string) {
			adapters, err := netinfo.Adapters()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			for _, a := range adapters {
				marker := " "
				if a.Default {
					marker = "*"
				}
				state := "down"
				if a.Up {
					state = "up"
				}
				fmt.Printf("%s %-24s %-4s", marker, a.Name, state)
				for _, addr := range a.Addrs {
					fmt.Printf(" %s", addr)
				}
				fmt.Println()
			}
		},
	}

	providersCmd := &cobra.Command{
		Use:   "providers",
		Short: "Print the reference table of well-known public DNS servers",
		Run: func(cmd *cobra.Command, args []string) {
			for _, pr := range providers.Table() {
				fmt.Printf("%-16s %-16s %s\n", pr.Name, pr.Primary, pr.Secondary)
			}
		},
	}

	rootCmd.AddCommand(applyCmd, scriptCmd, statusCmd, resetCmd, checkCmd, interfacesCmd, providersCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	return cfg
}

// resolveValues fills blanks with configured defaults and validates the
// result before it can reach a script template.
func resolveValues(p platform.Platform, cfg *config.Config, dns, iface string) (string, string) {
	if dns == "" {
		dns = cfg.DefaultDNS
	}
	if err := validate.DNSAddress(dns); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if p == platform.Windows {
		if iface == "" {
			if name := netinfo.DefaultName(); name != "" {
				iface = name
			} else {
				iface = cfg.DefaultInterface
			}
		}
		if err := validate.InterfaceName(iface); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	return dns, iface
}

// applyAndLaunch writes the script into the working directory and opens it
// in a new terminal. The spawn is fire-and-forget; whether the DNS command
// inside succeeded is only visible in that terminal.
func applyAndLaunch(p platform.Platform, cfg *config.Config, dns, iface string) {
	fmt.Printf("Setting DNS server to: %s\n", dns)
	if p == platform.Windows {
		fmt.Printf("Network interface: %s\n", iface)
	}

	// Best effort: the snapshot feeds `dnshell reset`, but its failure must
	// not block the launch.
	if err := system.Snapshot(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record current DNS configuration: %v\n", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path, err := script.Write(cwd, p, script.Options{DNS: dns, Interface: iface})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Script written to %s\n", path)

	cfg.LastDNS = dns
	cfg.LastInterface = iface
	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not save configuration: %v\n", err)
	}

	fmt.Println("Opening terminal...")
	if err := launcher.Launch(path); err != nil {
		if errors.Is(err, launcher.ErrNoTerminal) {
			fmt.Fprintf(os.Stderr, "warning: no terminal emulator found; run the script manually: bash %s\n", path)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done. The DNS change runs in the new terminal window.")
}
